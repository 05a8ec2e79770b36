// Package wire implements fixed-width, byte-exact serialization for the
// field, curve-pairing, and BGN types, mirroring the length-prefixed
// encode/decode shape the backend package uses for its own serialized
// constraint systems (see cs.SparseR1CS.WriteTo/ReadFrom), but written
// directly against encoding/binary rather than a generic codec: every
// field element here has a width pinned to its modulus, which a
// schema-less encoder would have to re-derive on every read anyway. The
// private key's N and Q1 are the exception: each is a 4-byte length
// followed by its minimal big-endian bytes.
package wire

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/privattest/bgncore/bgn"
	"github.com/privattest/bgncore/bgnerr"
	"github.com/privattest/bgncore/field"
)

// widthFor returns the number of bytes needed to hold any residue mod p,
// i.e. len(p.Bytes()).
func widthFor(p *big.Int) int {
	return (p.BitLen() + 7) / 8
}

func putUint32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

func getUint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// EncodeFieldElement writes a self-describing encoding of e: a 4-byte
// big-endian byte-width, followed by P, A, B each padded to that width.
func EncodeFieldElement(e field.Element) []byte {
	w := widthFor(e.P)
	buf := make([]byte, 4+3*w)
	putUint32(buf[0:4], uint32(w))
	e.P.FillBytes(buf[4 : 4+w])
	e.A.FillBytes(buf[4+w : 4+2*w])
	e.B.FillBytes(buf[4+2*w : 4+3*w])
	return buf
}

// DecodeFieldElement reads a field.Element encoded by EncodeFieldElement
// from the front of data, returning the element and the unconsumed
// remainder so callers can chain decodes (as EncodeCiphertext's decoder
// and EncodeAttestation's decoder both do).
func DecodeFieldElement(data []byte) (field.Element, []byte, error) {
	if len(data) < 4 {
		return field.Element{}, nil, shortRead("field element width header")
	}
	w := int(getUint32(data[0:4]))
	need := 4 + 3*w
	if len(data) < need {
		return field.Element{}, nil, shortRead("field element body")
	}
	p := new(big.Int).SetBytes(data[4 : 4+w])
	a := new(big.Int).SetBytes(data[4+w : 4+2*w])
	b := new(big.Int).SetBytes(data[4+2*w : 4+3*w])
	return field.New(p, a, b), data[need:], nil
}

// EncodeCiphertext writes a BGN ciphertext as its single field element.
func EncodeCiphertext(c *bgn.Ciphertext) []byte {
	return EncodeFieldElement(c.C)
}

// DecodeCiphertext is the inverse of EncodeCiphertext.
func DecodeCiphertext(data []byte) (*bgn.Ciphertext, []byte, error) {
	e, rest, err := DecodeFieldElement(data)
	if err != nil {
		return nil, nil, err
	}
	return &bgn.Ciphertext{C: e}, rest, nil
}

// EncodePublicKey writes (P, G, H) as three chained field-element
// encodings; P is redundant with the modulus carried in G/H but is
// written explicitly so a PublicKey round-trips without decrypting
// anything first.
func EncodePublicKey(pk *bgn.PublicKey) []byte {
	p := field.New(pk.P, pk.P, big.NewInt(0))
	out := EncodeFieldElement(p)
	out = append(out, EncodeFieldElement(pk.G)...)
	out = append(out, EncodeFieldElement(pk.H)...)
	return out
}

// DecodePublicKey is the inverse of EncodePublicKey.
func DecodePublicKey(data []byte) (*bgn.PublicKey, []byte, error) {
	pElem, rest, err := DecodeFieldElement(data)
	if err != nil {
		return nil, nil, err
	}
	g, rest, err := DecodeFieldElement(rest)
	if err != nil {
		return nil, nil, err
	}
	h, rest, err := DecodeFieldElement(rest)
	if err != nil {
		return nil, nil, err
	}
	return &bgn.PublicKey{P: pElem.P, G: g, H: h}, rest, nil
}

// EncodePrivateKey writes the public fields plus N and Q1, each of the
// latter two as a width-prefixed big-endian integer.
func EncodePrivateKey(sk *bgn.PrivateKey) []byte {
	out := EncodePublicKey(sk.Public())
	out = append(out, encodeBigInt(sk.N)...)
	out = append(out, encodeBigInt(sk.Q1)...)
	return out
}

// DecodePrivateKey is the inverse of EncodePrivateKey.
func DecodePrivateKey(data []byte) (*bgn.PrivateKey, []byte, error) {
	pub, rest, err := DecodePublicKey(data)
	if err != nil {
		return nil, nil, err
	}
	n, rest, err := decodeBigInt(rest)
	if err != nil {
		return nil, nil, err
	}
	q1, rest, err := decodeBigInt(rest)
	if err != nil {
		return nil, nil, err
	}
	return &bgn.PrivateKey{P: pub.P, G: pub.G, H: pub.H, N: n, Q1: q1}, rest, nil
}

func encodeBigInt(v *big.Int) []byte {
	raw := v.Bytes()
	buf := make([]byte, 4+len(raw))
	putUint32(buf[0:4], uint32(len(raw)))
	copy(buf[4:], raw)
	return buf
}

func decodeBigInt(data []byte) (*big.Int, []byte, error) {
	if len(data) < 4 {
		return nil, nil, shortRead("big.Int length header")
	}
	n := int(getUint32(data[0:4]))
	if len(data) < 4+n {
		return nil, nil, shortRead("big.Int body")
	}
	return new(big.Int).SetBytes(data[4 : 4+n]), data[4+n:], nil
}

func shortRead(what string) error {
	return &bgnerr.DomainError{Op: "wire.Decode", Reason: fmt.Sprintf("short read: %s", what)}
}
