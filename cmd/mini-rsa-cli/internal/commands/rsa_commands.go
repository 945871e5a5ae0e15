package commands

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/mini-rsa/internal/app"
	"github.com/MGTheTrain/mini-rsa/internal/domain/crypto"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	load func(cmd *cobra.Command) (*commandContext, error)
}

// NewRSACommandHandler initializes a new RSACommandHandler.
func NewRSACommandHandler() *RSACommandHandler {
	return &RSACommandHandler{load: loadCommandContext}
}

// GenerateKeysCmd generates an RSA key pair and prints its decimal components
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	keySize, err := keySizeFlag(cmd, c.config)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	publicKey, privateKey, err := c.processors.KeyPairs.GenerateKeys(keySize)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key_size_bits: %d\n", publicKey.KeySizeBits)
	fmt.Fprintf(out, "n: %s\n", publicKey.N)
	fmt.Fprintf(out, "e: %s\n", publicKey.E)
	fmt.Fprintf(out, "d: %s\n", privateKey.D)
	return nil
}

// EncryptCmd encrypts --message with the public key (--n, --e) and prints the comma separated cipher
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	publicKey, err := publicKeyFromFlags(cmd, c)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	cipher, err := c.processors.Transform.Encrypt(message, publicKey)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cipher.String())
	return nil
}

// DecryptCmd decrypts the comma separated --cipher with the private key (--n, --d) and prints the text
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	privateKey, err := privateKeyFromFlags(cmd, c)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	raw, err := cmd.Flags().GetString("cipher")
	if err != nil {
		return fmt.Errorf("invalid cipher flag: %w", err)
	}

	cipher, err := crypto.ParseEncryptedMessage(raw)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	plainText, err := c.processors.Transform.Decrypt(cipher, privateKey)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), plainText)
	return nil
}

// RoundTripCmd generates a key pair, encrypts --message and decrypts it again within one process
func (commandHandler *RSACommandHandler) RoundTripCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	keySize, err := keySizeFlag(cmd, c.config)
	if err != nil {
		c.logger.Error(err)
		return err
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	service, err := app.NewKeyPairSessionService(c.processors.KeyPairs, c.processors.Transform, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create key pair session service: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	meta, err := service.Generate(ctx, keySize)
	if err != nil {
		c.logger.Error(err)
		return err
	}
	defer func() {
		if err := service.Discard(ctx, meta.ID); err != nil {
			c.logger.Warn("Failed to discard key pair ", meta.ID, ": ", err)
		}
	}()

	publicKey, err := service.GetPublicKey(ctx, meta.ID)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	cipher, err := service.Encrypt(ctx, meta.ID, message)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	decrypted, err := service.Decrypt(ctx, meta.ID, cipher)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key_pair_id: %s\n", meta.ID)
	fmt.Fprintf(out, "public_key: %s\n", publicKey)
	fmt.Fprintf(out, "cipher: %s\n", cipher)
	fmt.Fprintf(out, "decrypted: %s\n", decrypted)
	fmt.Fprintf(out, "match: %t\n", decrypted == message)
	return nil
}

func publicKeyFromFlags(cmd *cobra.Command, c *commandContext) (*crypto.PublicKey, error) {
	keySize, err := keySizeFlag(cmd, c.config)
	if err != nil {
		return nil, err
	}
	n, err := bigIntFlag(cmd, "n")
	if err != nil {
		return nil, err
	}
	e, err := bigIntFlag(cmd, "e")
	if err != nil {
		return nil, err
	}

	publicKey := &crypto.PublicKey{KeySizeBits: keySize, N: n, E: e}
	if err := publicKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}
	return publicKey, nil
}

func privateKeyFromFlags(cmd *cobra.Command, c *commandContext) (*crypto.PrivateKey, error) {
	keySize, err := keySizeFlag(cmd, c.config)
	if err != nil {
		return nil, err
	}
	n, err := bigIntFlag(cmd, "n")
	if err != nil {
		return nil, err
	}
	d, err := bigIntFlag(cmd, "d")
	if err != nil {
		return nil, err
	}

	privateKey := &crypto.PrivateKey{KeySizeBits: keySize, N: n, D: d}
	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return privateKey, nil
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler := NewRSACommandHandler()

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair and print n, e and d",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().UintP("key-size", "", 0, "Bit length of each prime (0 uses rsa.key_size_bits)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message byte by byte with an RSA public key",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().UintP("key-size", "", 0, "Key size the public key was generated with (0 uses rsa.key_size_bits)")
	encryptCmd.Flags().StringP("n", "", "", "Decimal modulus n")
	encryptCmd.Flags().StringP("e", "", "", "Decimal public exponent e")
	encryptCmd.Flags().StringP("message", "", "", "Message to encrypt")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a comma separated cipher with an RSA private key",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().UintP("key-size", "", 0, "Key size the private key was generated with (0 uses rsa.key_size_bits)")
	decryptCmd.Flags().StringP("n", "", "", "Decimal modulus n")
	decryptCmd.Flags().StringP("d", "", "", "Decimal private exponent d")
	decryptCmd.Flags().StringP("cipher", "", "", "Comma separated decimal cipher integers")
	rootCmd.AddCommand(decryptCmd)

	var roundTripCmd = &cobra.Command{
		Use:   "roundtrip",
		Short: "Generate a key pair, encrypt a message and decrypt it again",
		RunE:  handler.RoundTripCmd,
	}
	roundTripCmd.Flags().UintP("key-size", "", 0, "Bit length of each prime (0 uses rsa.key_size_bits)")
	roundTripCmd.Flags().StringP("message", "", "", "Message to round trip")
	rootCmd.AddCommand(roundTripCmd)

	return nil
}
