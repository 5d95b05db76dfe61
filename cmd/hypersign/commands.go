package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"github.com/oarkflow/hypersign"
)

var errInvalidSignature = errors.New("signature is not valid")

type itemFlags struct {
	salt    string
	saltHex string
	seq     string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.salt, "salt", "", "derive the salt from this string seed")
	cmd.Flags().StringVar(&f.saltHex, "salt-hex", "", "raw salt, hex encoded")
	cmd.Flags().StringVar(&f.seq, "seq", "0", "sequence number, decimal")
	cmd.MarkFlagsMutuallyExclusive("salt", "salt-hex")
}

func (f *itemFlags) parse() (salt []byte, seq *uint256.Int, err error) {
	switch {
	case f.salt != "":
		salt, err = hypersign.SaltString(f.salt)
	case f.saltHex != "":
		salt, err = hex.DecodeString(f.saltHex)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parsing salt: %w", err)
	}
	seq, err = uint256.FromDecimal(f.seq)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing seq %q: %w", f.seq, err)
	}
	return salt, seq, nil
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "hypersign",
		Short:         "Sign and verify DHT mutable items.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(saltCmd(), keygenCmd(), signableCmd(), signCmd(), verifyCmd())
	return cmd
}

func saltCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "salt [SEED]",
		Short: "Derive a salt, from SEED or from zero bytes when omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed []byte
			if len(args) == 1 {
				seed = []byte(args[0])
			} else {
				slog.Warn("no seed given, salt is a fixed well-known value")
			}
			salt, err := hypersign.SaltWithSize(seed, size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(salt))
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", hypersign.DefaultSaltSize, "salt size in bytes")
	return cmd
}

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an ed25519 key pair and print its seed and public key.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kp := hypersign.GenerateKeyPair()
			defer kp.Erase()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seed: %x\n", kp.Seed())
			fmt.Fprintf(out, "public: %x\n", kp.MarshalPublicKey())
			return nil
		},
	}
}

func signableCmd() *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "signable VALUE",
		Short: "Print the payload that would be signed for VALUE.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			salt, seq, err := f.parse()
			if err != nil {
				return err
			}
			msg, err := hypersign.Signable([]byte(args[0]), salt, seq)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(msg)
			return err
		},
	}
	f.register(cmd)
	return cmd
}

func signCmd() *cobra.Command {
	var (
		f       itemFlags
		seedHex string
	)
	cmd := &cobra.Command{
		Use:   "sign VALUE",
		Short: "Sign VALUE with the ed25519 key expanded from --seed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			salt, seq, err := f.parse()
			if err != nil {
				return err
			}
			seed, err := hex.DecodeString(seedHex)
			if err != nil {
				return fmt.Errorf("parsing seed: %w", err)
			}
			kp, err := hypersign.KeyPairFromSeed(seed)
			clear(seed)
			if err != nil {
				return err
			}
			defer kp.Erase()

			sig, err := hypersign.Sign(
				[]byte(args[0]), &hypersign.Options{KeyPair: kp, Salt: salt, Seq: seq},
			)
			if err != nil {
				return err
			}
			slog.Debug(
				"signed item",
				slog.String("public", hex.EncodeToString(kp.MarshalPublicKey())),
				slog.String("seq", seq.Dec()),
				slog.Int("salt_len", len(salt)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig))
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&seedHex, "seed", "", "ed25519 seed, hex encoded")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

func verifyCmd() *cobra.Command {
	var (
		f              itemFlags
		pubHex, sigHex string
	)
	cmd := &cobra.Command{
		Use:   "verify VALUE",
		Short: "Verify an ed25519 signature over VALUE.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			salt, seq, err := f.parse()
			if err != nil {
				return err
			}
			pub, err := hex.DecodeString(pubHex)
			if err != nil {
				return fmt.Errorf("parsing public key: %w", err)
			}
			sig, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("parsing signature: %w", err)
			}
			ok, err := hypersign.Verify([]byte(args[0]), salt, seq, sig, pub)
			if err != nil {
				return err
			}
			if !ok {
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&pubHex, "pub", "", "public key, hex encoded")
	cmd.Flags().StringVar(&sigHex, "sig", "", "signature, hex encoded")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
