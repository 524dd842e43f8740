package types

// DefaultModulusBits is the RSA modulus size used when an algorithm leaves it unset.
const DefaultModulusBits = 1024

// Algorithm carries the algorithm parameters relevant to derivation.
//
// ModulusLength applies to RSA, NamedCurve to EC. Name is informational
// (e.g. "RSASSA-PKCS1-v1_5", "ECDSA").
type Algorithm struct {
	Name          string    `json:"name,omitempty"`
	ModulusLength int       `json:"modulusLength,omitempty"`
	NamedCurve    CurveName `json:"namedCurve,omitempty"`
}

// GenerateParams selects what a PairwiseKey generates.
//
// Keys are exportable by default: start from DefaultGenerateParams, which sets
// Exportable. A zero GenerateParams literal yields a non-exportable key whose
// JWK method returns ErrNotExportable.
type GenerateParams struct {
	KeyType    KeyType
	Algorithm  Algorithm
	Use        KeyUse
	Exportable bool
}

// DefaultGenerateParams returns exportable signing parameters for kt.
func DefaultGenerateParams(kt KeyType) GenerateParams {
	p := GenerateParams{KeyType: kt, Use: KeyUseSig, Exportable: true}
	switch kt {
	case KeyTypeEC:
		p.Algorithm = Algorithm{Name: "ECDSA", NamedCurve: CurveK256}
	case KeyTypeRSA:
		p.Algorithm = Algorithm{Name: "RSASSA-PKCS1-v1_5", ModulusLength: DefaultModulusBits}
	}
	return p
}

// Diagnostics reports generation statistics. Prime counts are zero for EC.
type Diagnostics struct {
	PrimeTestCount int `json:"prime_test_count"`
	PTests         int `json:"p_tests"`
	QTests         int `json:"q_tests"`
}
