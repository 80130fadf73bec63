package tibe

import "errors"

var (
	ErrInvalidParameters   = errors.New("invalid threshold parameters")
	ErrInvalidShareIndex   = errors.New("invalid share index")
	ErrVerificationFailure = errors.New("partial key verification failed")
	ErrInsufficientShares  = errors.New("insufficient shares")
	ErrDuplicateShareIndex = errors.New("duplicate share index")
	ErrInvalidCiphertext   = errors.New("invalid ciphertext")
	ErrSerialization       = errors.New("serialization error")
	ErrModulusMismatch     = errors.New("sharing modulus does not match the group order")
	ErrEntropyFailure      = errors.New("random source failure")
)
