package browser

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"testing"
)

// encryptChromeValue encrypts plaintext the way Chromium does on desktop
// Linux/macOS: AES-128-CBC, fixed space IV, PKCS#7 padding, version
// prefix. Used to build fixtures for the decrypt path.
func encryptChromeValue(t *testing.T, plaintext, version string, key []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("failed to build cipher: %v", err)
	}

	pad := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append([]byte(plaintext), bytes.Repeat([]byte{byte(pad)}, pad)...)

	iv := bytes.Repeat([]byte{' '}, chromeIVLen)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return append([]byte(version), out...)
}

func TestDeriveChromeKey_Deterministic(t *testing.T) {
	a := deriveChromeKey("peanuts", 1)
	b := deriveChromeKey("peanuts", 1)
	if !bytes.Equal(a, b) {
		t.Error("expected identical keys for the same password")
	}
	if len(a) != chromeKeyLen {
		t.Errorf("expected %d-byte key, got %d", chromeKeyLen, len(a))
	}
	if bytes.Equal(a, deriveChromeKey("other", 1)) {
		t.Error("expected different keys for different passwords")
	}
}

func TestDecryptCBC_RoundTrip(t *testing.T) {
	key := deriveChromeKey("peanuts", 1)
	for _, plaintext := range []string{"", "x", "a sixteen-byte-v", "a much longer cookie value than one block"} {
		enc := encryptChromeValue(t, plaintext, "v10", key)
		got, err := decryptCBC(enc[3:], key)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", plaintext, err)
		}
		if got != plaintext {
			t.Errorf("round trip mismatch: got %q, want %q", got, plaintext)
		}
	}
}

func TestDecryptCBC_RejectsBadLength(t *testing.T) {
	key := deriveChromeKey("peanuts", 1)
	if _, err := decryptCBC([]byte("short"), key); err == nil {
		t.Error("expected error for non-block-aligned ciphertext")
	}
	if _, err := decryptCBC(nil, key); err == nil {
		t.Error("expected error for empty ciphertext")
	}
}

func TestDecryptCBC_CorruptedCiphertext(t *testing.T) {
	key := deriveChromeKey("peanuts", 1)
	enc := encryptChromeValue(t, "value", "v10", key)
	enc[len(enc)-1] ^= 0xff

	// Corruption may scramble the padding (an error) or just the content;
	// it must never decrypt back to the original value.
	got, err := decryptCBC(enc[3:], key)
	if err == nil && got == "value" {
		t.Error("corrupted ciphertext decrypted to the original value")
	}
}

func TestChromeDecryptor_UnsupportedVersions(t *testing.T) {
	d := newChromeDecryptor()
	if _, err := d.decrypt([]byte("v9")); err == nil {
		t.Error("expected error for truncated blob")
	}
	if _, err := d.decrypt([]byte("v99aaaaaaaaaaaaaa")); err == nil {
		t.Error("expected error for unknown version")
	}
}

func TestChromeDecryptor_CachesDerivedKey(t *testing.T) {
	d := newChromeDecryptor()
	key := deriveChromeKey("peanuts", 1)
	d.keys["v10"] = key

	enc := encryptChromeValue(t, "cached", "v10", key)
	for i := 0; i < 2; i++ {
		got, err := d.decrypt(enc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "cached" {
			t.Errorf("expected %q, got %q", "cached", got)
		}
	}
}
