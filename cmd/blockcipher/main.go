// Command blockcipher is the CLI collaborator for the block-cipher
// toolkit: it owns algorithm selection, key-file and data-file I/O, and
// leaves the cryptography itself to the cipher packages.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdravlev/blockcipher/internal/chunkio"
	"github.com/kdravlev/blockcipher/internal/keyfile"
	"github.com/kdravlev/blockcipher/internal/keygen"
	"github.com/kdravlev/blockcipher/internal/strategy"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blockcipher",
		Short: "DES / Triple-DES / AES block-cipher toolkit",
	}

	rootCmd.AddCommand(
		newEncryptCmd(),
		newDecryptCmd(),
		newGenerateKeyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newEncryptCmd() *cobra.Command {
	return newTransformCmd("encrypt", "Encrypt a file", true)
}

func newDecryptCmd() *cobra.Command {
	return newTransformCmd("decrypt", "Decrypt a file", false)
}

func newTransformCmd(use, short string, encrypt bool) *cobra.Command {
	var algo string
	var keyPath string
	var inputPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   use + " --algo=ALGO --key=KEYFILE --in=INPUT --out=OUTPUT",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := strategy.Algorithm(algo)
			if !tag.Valid() {
				return fmt.Errorf("unknown algorithm %q, want one of %v", algo, strategy.Names())
			}

			key, err := keyfile.Read(keyPath, tag)
			if err != nil {
				return err
			}

			c, err := strategy.New(strategy.Request{Algorithm: tag, Key: key})
			if err != nil {
				return err
			}

			in, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := chunkio.Transform(out, in, c, encrypt); err != nil {
				return err
			}

			fmt.Printf("wrote %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "", fmt.Sprintf("algorithm: one of %v", strategy.Names()))
	cmd.Flags().StringVar(&keyPath, "key", "", "path to the key file")
	cmd.Flags().StringVar(&inputPath, "in", "", "path to the input file")
	cmd.Flags().StringVar(&outputPath, "out", "", "path to the output file")
	for _, name := range []string{"algo", "key", "in", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newGenerateKeyCmd() *cobra.Command {
	var algo string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate-key --algo=ALGO --out=KEYFILE",
		Short: "Generate a random key file for an algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := strategy.Algorithm(algo)
			if !tag.Valid() {
				return fmt.Errorf("unknown algorithm %q, want one of %v", algo, strategy.Names())
			}

			key, err := keygen.Generate(tag)
			if err != nil {
				return err
			}

			if err := keyfile.Write(outputPath, key); err != nil {
				return err
			}

			fmt.Printf("wrote %d-byte key to %s\n", len(key), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "", fmt.Sprintf("algorithm: one of %v", strategy.Names()))
	cmd.Flags().StringVar(&outputPath, "out", "", "path to write the key file")
	for _, name := range []string{"algo", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
