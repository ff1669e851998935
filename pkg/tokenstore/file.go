package tokenstore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/crypto/argon2"

	"github.com/harborchat/harbor/pkg/chatsdk"
)

// Argon2id parameters for deriving the file encryption key.
const (
	argonIterations  = 1
	argonMemory      = 64 * 1024
	argonParallelism = 4
	keyLength        = 32
	saltLength       = 16
)

// File persists the token in a single file, encrypted at rest.
//
// Layout: [16-byte salt][12-byte nonce][ciphertext + auth tag]. The key is
// derived per write from the passphrase and a fresh random salt using
// Argon2id, and the token JSON is sealed with AES-256-GCM. A wrong
// passphrase surfaces as a decryption failure on Get.
type File struct {
	mu         sync.Mutex
	path       string
	passphrase []byte
}

// NewFile creates a file-backed token store at path. The file is created
// on first Save with mode 0600.
func NewFile(path, passphrase string) *File {
	return &File{
		path:       path,
		passphrase: []byte(passphrase),
	}
}

// Get reads and decrypts the stored token. A missing file means no token
// has been saved yet and returns chatsdk.ErrNoToken.
func (s *File) Get(_ context.Context) (chatsdk.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return chatsdk.Token{}, chatsdk.ErrNoToken
		}
		return chatsdk.Token{}, fmt.Errorf("failed to read token file: %w", err)
	}

	if len(data) < saltLength {
		return chatsdk.Token{}, fmt.Errorf("token file corrupt: too short")
	}
	salt, sealed := data[:saltLength], data[saltLength:]

	gcm, err := s.aead(salt)
	if err != nil {
		return chatsdk.Token{}, err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return chatsdk.Token{}, fmt.Errorf("token file corrupt: too short")
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return chatsdk.Token{}, fmt.Errorf("failed to decrypt token file: %w", err)
	}

	var token chatsdk.Token
	if err := json.Unmarshal(plaintext, &token); err != nil {
		return chatsdk.Token{}, fmt.Errorf("failed to decode token file: %w", err)
	}

	return token, nil
}

// Save encrypts and writes the token, replacing any previous file content.
func (s *File) Save(_ context.Context, token chatsdk.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plaintext, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, saltLength+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, gcm.Seal(nonce, nonce, plaintext, nil)...)

	if err := os.WriteFile(s.path, out, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// aead derives the AES-256-GCM cipher for the given salt.
func (s *File) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.passphrase, salt, argonIterations, argonMemory, argonParallelism, keyLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}
