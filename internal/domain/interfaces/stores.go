package interfaces

// MasterSecretStore persists one passphrase-protected master secret per DID.
type MasterSecretStore interface {
	SaveMasterSecret(passphrase, did string, secret []byte, overwrite bool) error
	LoadMasterSecret(passphrase, did string) ([]byte, error)
	ListDIDs() ([]string, error)
}
