package intake

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// 信封格式：base64(version | salt | nonce | ciphertext)。
const (
	envelopeVersion = 1
	saltSize        = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

var (
	ErrEmptyPassphrase  = errors.New("passphrase cannot be empty")
	ErrInvalidEnvelope  = errors.New("invalid encrypted envelope")
	ErrDecryptionFailed = errors.New("decryption failed: wrong passphrase or corrupted data")
)

func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
}

// Encrypt 用口令派生密钥（argon2id）并以 XChaCha20-Poly1305 加密，返回 base64 信封。
func Encrypt(plaintext []byte, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	buf := make([]byte, 1+saltSize+chacha20poly1305.NonceSizeX, 1+saltSize+chacha20poly1305.NonceSizeX+len(plaintext)+chacha20poly1305.Overhead)
	buf[0] = envelopeVersion
	if _, err := io.ReadFull(rand.Reader, buf[1:]); err != nil {
		return "", fmt.Errorf("generate salt and nonce: %w", err)
	}
	salt := buf[1 : 1+saltSize]
	nonce := buf[1+saltSize:]

	aead, err := chacha20poly1305.NewX(deriveKey(passphrase, salt))
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	sealed := aead.Seal(buf, nonce, plaintext, buf[:1])
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt 解开 Encrypt 生成的信封。
func Decrypt(envelope, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(envelope))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	header := 1 + saltSize + chacha20poly1305.NonceSizeX
	if len(data) < header+chacha20poly1305.Overhead || data[0] != envelopeVersion {
		return nil, ErrInvalidEnvelope
	}
	salt := data[1 : 1+saltSize]
	nonce := data[1+saltSize : header]

	aead, err := chacha20poly1305.NewX(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, data[header:], data[:1])
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// EncryptedPath 返回 <stem>_encrypted<ext>，与原文件同目录。
func EncryptedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_encrypted" + ext
}

// EncryptCopy 读取 path 并写入加密副本，返回副本路径。
func EncryptCopy(path, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}
	plaintext, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	envelope, err := Encrypt(plaintext, passphrase)
	if err != nil {
		return "", err
	}
	out := EncryptedPath(path)
	if err := os.WriteFile(out, []byte(envelope+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write encrypted copy: %w", err)
	}
	return out, nil
}
