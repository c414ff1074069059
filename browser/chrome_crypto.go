package browser

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Chromium encrypts cookie values with AES-128-CBC under a key derived
// from the Safe Storage password via PBKDF2-SHA1. The salt and IV are
// fixed across platforms; the password and iteration count are not
// (see safestorage_*.go).
const (
	chromeSalt   = "saltysalt"
	chromeKeyLen = 16
	chromeIVLen  = 16
)

// chromeDecryptor derives and caches the AES keys for the v10 and v11
// value versions. Safe Storage lookups happen at most once per version.
type chromeDecryptor struct {
	keys map[string][]byte
	errs map[string]error
}

func newChromeDecryptor() *chromeDecryptor {
	return &chromeDecryptor{
		keys: make(map[string][]byte),
		errs: make(map[string]error),
	}
}

// decrypt decrypts a v10 or v11 encrypted_value blob.
func (d *chromeDecryptor) decrypt(enc []byte) (string, error) {
	if len(enc) < 3 {
		return "", fmt.Errorf("encrypted value too short (%d bytes)", len(enc))
	}
	version := string(enc[:3])
	if version != "v10" && version != "v11" {
		return "", fmt.Errorf("unsupported encryption version %q", version)
	}

	key, err := d.keyFor(version)
	if err != nil {
		return "", err
	}
	return decryptCBC(enc[3:], key)
}

func (d *chromeDecryptor) keyFor(version string) ([]byte, error) {
	if key, ok := d.keys[version]; ok {
		return key, nil
	}
	if err, ok := d.errs[version]; ok {
		return nil, err
	}

	password, err := safeStoragePassword(version)
	if err != nil {
		d.errs[version] = err
		return nil, err
	}
	key := deriveChromeKey(password, safeStorageIterations)
	d.keys[version] = key
	return key, nil
}

// deriveChromeKey runs Chromium's cookie KDF: PBKDF2-SHA1 over the Safe
// Storage password with the fixed salt.
func deriveChromeKey(password string, iterations int) []byte {
	return pbkdf2.Key([]byte(password), []byte(chromeSalt), iterations, chromeKeyLen, sha1.New)
}

// decryptCBC decrypts AES-128-CBC ciphertext with Chromium's fixed IV of
// sixteen spaces and strips the PKCS#7 padding.
func decryptCBC(ciphertext, key []byte) (string, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("ciphertext length %d is not a multiple of the block size", len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	iv := bytes.Repeat([]byte{' '}, chromeIVLen)
	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	pad := int(plain[len(plain)-1])
	if pad < 1 || pad > aes.BlockSize || pad > len(plain) {
		return "", fmt.Errorf("invalid padding byte %d", pad)
	}
	return string(plain[:len(plain)-pad]), nil
}
