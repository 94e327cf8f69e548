package keypair

import (
	stellar "github.com/stellar/go/keypair"
)

// Random returns a new full keypair for tests and panics on failure.
func Random() *Full {
	kp, err := stellar.Random()
	if err != nil {
		panic(err)
	}

	return kp
}
