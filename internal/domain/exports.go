package domain

import (
	interfaces "pairwise/internal/domain/interfaces"
	types "pairwise/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyType          = types.KeyType
	CurveName        = types.CurveName
	KeyUse           = types.KeyUse
	HashFunction     = types.HashFunction
	PairwiseIdentity = types.PairwiseIdentity
	Algorithm        = types.Algorithm
	GenerateParams   = types.GenerateParams
	Diagnostics      = types.Diagnostics
	RSAKeyMaterial   = types.RSAKeyMaterial
	ECKeyMaterial    = types.ECKeyMaterial
	JWK              = types.JWK
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Signer            = interfaces.Signer
	KeyedHash         = interfaces.KeyedHash
	Curve             = interfaces.Curve
	Primality         = interfaces.Primality
	Primitives        = interfaces.Primitives
	PrivateKey        = interfaces.PrivateKey
	MasterSecretStore = interfaces.MasterSecretStore
	PairwiseService   = interfaces.PairwiseService
	IdentityService   = interfaces.IdentityService
)

const (
	KeyTypeEC  = types.KeyTypeEC
	KeyTypeRSA = types.KeyTypeRSA

	CurveK256  = types.CurveK256
	CurveP256K = types.CurveP256K

	KeyUseSig = types.KeyUseSig
	KeyUseEnc = types.KeyUseEnc

	SHA256 = types.SHA256
	SHA512 = types.SHA512

	DefaultModulusBits = types.DefaultModulusBits
	PublicExponent     = types.PublicExponent
)

// DefaultGenerateParams returns exportable signing parameters for kt.
func DefaultGenerateParams(kt KeyType) GenerateParams { return types.DefaultGenerateParams(kt) }
