// Package password hashes credentials with salted argon2id and stores them
// as PHC strings: $argon2id$v=19$m=<mem>,t=<time>,p=<par>$<salt>$<hash>.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/carlisting-server/internal/model"
)

const (
	algorithm  = "argon2id"
	saltLength = 16
	keyLength  = 32
)

var (
	ErrInvalidHash         = errors.New("invalid password hash")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Params are argon2id cost parameters.
type Params struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
}

// Argon2 implements PasswordHasher.
type Argon2 struct {
	params Params
}

var _ model.PasswordHasher = (*Argon2)(nil)

// NewArgon2 validates params and creates a hasher.
func NewArgon2(params Params) (*Argon2, error) {
	if params.Time < 1 {
		return nil, fmt.Errorf("argon2 time must be >= 1")
	}
	if params.MemKiB < 8*uint32(params.Par) || params.MemKiB == 0 {
		return nil, fmt.Errorf("argon2 memory must be >= 8*parallelism KiB")
	}
	if params.Par < 1 {
		return nil, fmt.Errorf("argon2 parallelism must be >= 1")
	}
	return &Argon2{params: params}, nil
}

// Hash derives a salted hash of password.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.params.Time, a.params.MemKiB, a.params.Par, keyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm, argon2.Version, a.params.MemKiB, a.params.Time, a.params.Par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the hash with the parameters stored in encodedHash and
// compares in constant time.
func (a *Argon2) Verify(password, encodedHash string) (bool, error) {
	params, salt, key, err := decode(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.MemKiB, params.Par, uint32(len(key)))

	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}

func decode(encodedHash string) (Params, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithm {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return Params{}, nil, nil, ErrIncompatibleVersion
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemKiB, &p.Time, &p.Par); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	return p, salt, key, nil
}
