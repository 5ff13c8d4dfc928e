package store

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"tally/internal/domain"
	"tally/internal/util/memzero"
)

const (
	// The current supported version of the sealed counters format.
	envelopeFormatVersion = 1

	saltSize = 16
)

// envelope is the on-disk JSON structure of a sealed counters file.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// looksSealed reports whether data is an envelope rather than a record document.
// Every record contains the field separator; an envelope is one JSON line without it.
func looksSealed(data []byte) bool {
	t := bytes.TrimSpace(data)
	if !bytes.HasPrefix(t, []byte(`{"v":`)) || bytes.ContainsAny(t, fieldSep+"\n") {
		return false
	}
	return json.Valid(t)
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// seal derives a key from passphrase and encrypts the record document into an envelope.
func seal(passphrase string, doc []byte) ([]byte, error) {
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; a fresh salt per save gives a fresh key
	ct := aead.Seal(nil, nonce[:], doc, salt[:])

	out, err := json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// open decrypts an envelope produced by seal.
func open(passphrase string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(bytes.TrimSpace(b), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWrongPassphrase, err)
	}
	if env.V < 1 || env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported counters envelope version %d", env.V)
	}
	if N, r, p := scryptParamsDefault(); env.N != N || env.R != r || env.P != p {
		return nil, fmt.Errorf("%w: unexpected scrypt parameters", domain.ErrWrongPassphrase)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return nil, domain.ErrWrongPassphrase
	}
	return pt, nil
}
