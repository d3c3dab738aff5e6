package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
	"unicode/utf16"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/pbkdf2"
)

const (
	keySize   = 32 // AES-256
	blockSize = aes.BlockSize

	// DefaultIterations is the PBKDF2 iteration count used when none is configured.
	DefaultIterations = 600000
)

// ErrCiphertextCorrupt is returned when a stored value cannot be decrypted.
// It indicates data-at-rest corruption or a wrong key and must never be
// silently swallowed by callers.
var ErrCiphertextCorrupt = errors.New("ciphertext corrupt or key mismatch")

// Codec encrypts and decrypts scalar values at the persistence boundary.
//
// The key and IV are both sliced from a single PBKDF2-derived buffer, so the
// IV is a fixed prefix of the key material and is reused for every
// ciphertext. This weakens CBC (equal plaintexts produce equal ciphertexts)
// but is kept as-is: previously stored data must remain decryptable.
type Codec struct {
	key []byte
	iv  []byte
}

// NewCodec derives the key material from the configured passphrase and salt.
func NewCodec(cfg models.CryptoConfig) (*Codec, error) {
	if cfg.Passphrase == "" {
		return nil, errors.New("crypto: passphrase is required")
	}
	if cfg.Salt == "" {
		return nil, errors.New("crypto: salt is required")
	}

	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	derived := pbkdf2.Key([]byte(cfg.Passphrase), []byte(cfg.Salt), iterations, keySize+blockSize, sha512.New)

	return &Codec{
		key: derived[:keySize],
		iv:  derived[:blockSize],
	}, nil
}

// Encrypt encrypts the canonical string form of a value. Empty plaintext
// round-trips to itself without invoking AES.
func (c *Codec) Encrypt(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("crypto: %w", err)
	}

	data := pkcs7Pad(encodeUTF16(plain), blockSize)
	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, c.iv).CryptBlocks(out, data)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Empty ciphertext round-trips to itself.
func (c *Codec) Decrypt(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertextCorrupt, err)
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d not a block multiple", ErrCiphertextCorrupt, len(data))
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("crypto: %w", err)
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, c.iv).CryptBlocks(out, data)

	unpadded, err := pkcs7Unpad(out, blockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertextCorrupt, err)
	}

	plain, err := decodeUTF16(unpadded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertextCorrupt, err)
	}
	return plain, nil
}

// EncryptBytes encrypts a byte slice. The bytes are base64-encoded before
// encryption so they survive the canonical string form.
func (c *Codec) EncryptBytes(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	return c.Encrypt(base64.StdEncoding.EncodeToString(b))
}

// DecryptBytes reverses EncryptBytes.
func (c *Codec) DecryptBytes(encrypted string) ([]byte, error) {
	plain, err := c.Decrypt(encrypted)
	if err != nil {
		return nil, err
	}
	if plain == "" {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCiphertextCorrupt, err)
	}
	return b, nil
}

// EncryptDecimal encrypts a decimal amount.
func (c *Codec) EncryptDecimal(d decimal.Decimal) (string, error) {
	return c.Encrypt(d.String())
}

// DecryptDecimal reverses EncryptDecimal. Empty input yields zero.
func (c *Codec) DecryptDecimal(encrypted string) (decimal.Decimal, error) {
	plain, err := c.Decrypt(encrypted)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if plain == "" {
		return decimal.Decimal{}, nil
	}
	d, err := decimal.NewFromString(plain)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrCiphertextCorrupt, err)
	}
	return d, nil
}

// EncryptInt encrypts an integer.
func (c *Codec) EncryptInt(v int64) (string, error) {
	return c.Encrypt(fmt.Sprintf("%d", v))
}

// DecryptInt reverses EncryptInt. Empty input yields zero.
func (c *Codec) DecryptInt(encrypted string) (int64, error) {
	plain, err := c.Decrypt(encrypted)
	if err != nil {
		return 0, err
	}
	if plain == "" {
		return 0, nil
	}
	var v int64
	if _, err := fmt.Sscanf(plain, "%d", &v); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCiphertextCorrupt, err)
	}
	return v, nil
}

// EncryptTime encrypts a timestamp. A nil pointer round-trips to empty.
func (c *Codec) EncryptTime(t *time.Time) (string, error) {
	if t == nil {
		return "", nil
	}
	return c.Encrypt(t.UTC().Format(time.RFC3339Nano))
}

// DecryptTime reverses EncryptTime. Empty input yields nil.
func (c *Codec) DecryptTime(encrypted string) (*time.Time, error) {
	plain, err := c.Decrypt(encrypted)
	if err != nil {
		return nil, err
	}
	if plain == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCiphertextCorrupt, err)
	}
	return &t, nil
}

// encodeUTF16 converts a string to UTF-16LE bytes, matching the canonical
// plaintext encoding of previously stored data.
func encodeUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		out[i*2] = byte(u)
		out[i*2+1] = byte(u >> 8)
	}
	return out
}

// decodeUTF16 converts UTF-16LE bytes back to a string.
func decodeUTF16(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errors.New("odd UTF-16 byte length")
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[i*2]) | uint16(b[i*2+1])<<8
	}
	return string(utf16.Decode(units)), nil
}

// pkcs7Pad appends PKCS7 padding up to the block size.
func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// pkcs7Unpad strips and validates PKCS7 padding.
func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, errors.New("invalid padding byte")
	}
	for _, pad := range b[len(b)-n:] {
		if int(pad) != n {
			return nil, errors.New("inconsistent padding")
		}
	}
	return b[:len(b)-n], nil
}
