package service

import "testing"

func TestHashAndVerify(t *testing.T) {
	h := NewHasher()

	digest, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest equals plaintext")
	}

	if !h.Verify("correct horse battery staple", digest) {
		t.Error("Verify rejected the right password")
	}
	if h.Verify("wrong password", digest) {
		t.Error("Verify accepted the wrong password")
	}
}

func TestHash_Salted(t *testing.T) {
	h := NewHasher()

	a, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("expected different digests for the same input")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewHasher()
	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Error("Verify accepted a malformed digest")
	}
}
