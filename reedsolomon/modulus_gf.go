// Package reedsolomon implements the error correction code of PDF417: a
// Reed-Solomon code over the prime field GF(929).
package reedsolomon

const modulus = 929

// ModulusGF represents a field based on powers of a generator integer,
// modulo 929.
type ModulusGF struct {
	expTable [modulus]uint16
	logTable [modulus]uint16
}

// PDF417GF is the field used by PDF417 and MicroPDF417 (generator 3).
var PDF417GF = NewModulusGF(3)

// NewModulusGF builds the exponential and logarithm tables for the field
// generated by generator.
func NewModulusGF(generator int) *ModulusGF {
	gf := &ModulusGF{}
	x := 1
	for i := 0; i < modulus; i++ {
		gf.expTable[i] = uint16(x)
		x = (x * generator) % modulus
	}
	for i := 0; i < modulus-1; i++ {
		gf.logTable[gf.expTable[i]] = uint16(i)
	}
	// logTable[0] == 0 but this should never be used
	return gf
}

// Add returns (a + b) mod 929.
func (gf *ModulusGF) Add(a, b int) int {
	return (a + b) % modulus
}

// Subtract returns (a - b) mod 929.
func (gf *ModulusGF) Subtract(a, b int) int {
	return (modulus + a - b) % modulus
}

// Exp returns generator^a.
func (gf *ModulusGF) Exp(a int) int {
	return int(gf.expTable[a%(modulus-1)])
}

// Log returns the logarithm of a. Panics if a is 0.
func (gf *ModulusGF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return int(gf.logTable[a])
}

// Inverse returns the multiplicative inverse of a. Panics if a is 0.
func (gf *ModulusGF) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return int(gf.expTable[modulus-int(gf.logTable[a])-1])
}

// Multiply returns a * b in the field.
func (gf *ModulusGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return int(gf.expTable[(int(gf.logTable[a])+int(gf.logTable[b]))%(modulus-1)])
}

// Size returns the order of the field.
func (gf *ModulusGF) Size() int {
	return modulus
}
