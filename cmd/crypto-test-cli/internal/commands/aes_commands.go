package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/infrastructure/cryptography"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES file operations via CLI.
type AESCommandHandler struct {
	aesProcessor crypto.AESProcessor
	logger       logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger and AES processor.
func NewAESCommandHandler(log logger.Logger) (*AESCommandHandler, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	return &AESCommandHandler{
		aesProcessor: aesProcessor,
		logger:       log,
	}, nil
}

// GenerateAESKeyCmd generates an AES key and persists it in the selected directory
func (commandHandler *AESCommandHandler) GenerateAESKeyCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	secretKey, err := commandHandler.aesProcessor.GenerateKey(keySize / 8)
	if err != nil {
		return err
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	commandHandler.logger.Info("AES key saved to ", keyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return nil
}

type fileFlags struct {
	input, output, key string
}

func readFileFlags(cmd *cobra.Command) (*fileFlags, error) {
	var (
		f   fileFlags
		err error
	)
	if f.input, err = cmd.Flags().GetString("input-file"); err != nil {
		return nil, fmt.Errorf("invalid input-file flag: %w", err)
	}
	if f.output, err = cmd.Flags().GetString("output-file"); err != nil {
		return nil, fmt.Errorf("invalid output-file flag: %w", err)
	}
	if f.key, err = cmd.Flags().GetString("symmetric-key"); err != nil {
		return nil, fmt.Errorf("invalid symmetric-key flag: %w", err)
	}
	return &f, nil
}

// EncryptAESCmd seals a file with AES-GCM under a key read from a file
func (commandHandler *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	flags, err := readFileFlags(cmd)
	if err != nil {
		return err
	}

	plainText, err := os.ReadFile(filepath.Clean(flags.input))
	if err != nil {
		return err
	}

	key, err := os.ReadFile(filepath.Clean(flags.key))
	if err != nil {
		return err
	}

	encryptedData, err := commandHandler.aesProcessor.Encrypt(plainText, key)
	if err != nil {
		return err
	}

	if err := os.WriteFile(flags.output, encryptedData, 0600); err != nil {
		return err
	}

	commandHandler.logger.Info("Encrypted data saved to ", flags.output)
	return nil
}

// DecryptAESCmd opens a file produced by encrypt-aes
func (commandHandler *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	flags, err := readFileFlags(cmd)
	if err != nil {
		return err
	}

	key, err := os.ReadFile(filepath.Clean(flags.key))
	if err != nil {
		return err
	}

	encryptedData, err := os.ReadFile(filepath.Clean(flags.input))
	if err != nil {
		return err
	}

	decryptedData, err := commandHandler.aesProcessor.Decrypt(encryptedData, key)
	if err != nil {
		return err
	}

	if err := os.WriteFile(flags.output, decryptedData, 0600); err != nil {
		return err
	}

	commandHandler.logger.Info("Decrypted data saved to ", flags.output)
	return nil
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger()
	if err != nil {
		return err
	}
	handler, err := NewAESCommandHandler(log)
	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	var generateAESKeyCmd = &cobra.Command{
		Use:   "generate-aes-key",
		Short: "Generate an AES key",
		RunE:  handler.GenerateAESKeyCmd,
	}
	generateAESKeyCmd.Flags().IntP("key-size", "", 256, "AES key size in bits (128, 192 or 256)")
	generateAESKeyCmd.Flags().StringP("key-dir", "", ".", "Directory to store the encryption key")
	rootCmd.AddCommand(generateAESKeyCmd)

	var encryptAESFileCmd = &cobra.Command{
		Use:   "encrypt-aes",
		Short: "Encrypt a file using AES-GCM",
		RunE:  handler.EncryptAESCmd,
	}
	encryptAESFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(encryptAESFileCmd)

	var decryptAESFileCmd = &cobra.Command{
		Use:   "decrypt-aes",
		Short: "Decrypt a file using AES-GCM",
		RunE:  handler.DecryptAESCmd,
	}
	decryptAESFileCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptAESFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptAESFileCmd.Flags().StringP("symmetric-key", "", "", "Path to the symmetric key")
	rootCmd.AddCommand(decryptAESFileCmd)

	return nil
}
