package kat

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

// ECBCopies is how many times each ECB block is repeated to make sure
// identical blocks encrypt identically across a multi-block update.
const ECBCopies = 16

// Vector is one known-answer test case.
type Vector struct {
	Mechanism   crypto.Mechanism
	Number      int
	Source      string
	Key         []byte
	IV          []byte // CBC IV, CTR initial counter block or GCM IV
	CounterBits int
	AAD         []byte
	Plaintext   []byte
	Ciphertext  []byte
	Tag         []byte
	Copies      int
}

// Name is the report prefix, e.g. "GCM/3".
func (v Vector) Name() string {
	return v.Mechanism.String() + "/" + strconv.Itoa(v.Number)
}

// Params builds the session parameters for the vector.
func (v Vector) Params() crypto.Params {
	switch v.Mechanism {
	case crypto.MechanismCBC:
		return &crypto.CBCParams{IV: v.IV}
	case crypto.MechanismCTR:
		return &crypto.CTRParams{Counter: v.IV, CounterBits: v.CounterBits}
	case crypto.MechanismGCM:
		return &crypto.GCMParams{IV: v.IV, AAD: v.AAD, TagBits: len(v.Tag) * 8}
	default:
		return nil
	}
}

func (v Vector) copies() int {
	if v.Copies < 1 {
		return 1
	}
	return v.Copies
}

// Input is what the session is fed in the given direction. Decrypting GCM
// takes the ciphertext followed by the tag.
func (v Vector) Input(dir crypto.Direction) []byte {
	if dir == crypto.Encrypt {
		return bytes.Repeat(v.Plaintext, v.copies())
	}
	in := bytes.Repeat(v.Ciphertext, v.copies())
	return append(in, v.Tag...)
}

// Expected is what the session must produce in the given direction.
func (v Vector) Expected(dir crypto.Direction) []byte {
	if dir == crypto.Decrypt {
		return bytes.Repeat(v.Plaintext, v.copies())
	}
	out := bytes.Repeat(v.Ciphertext, v.copies())
	return append(out, v.Tag...)
}

// Mismatch returns the offset of the first copy in got that differs from
// the expected output, or -1 when got matches exactly.
func (v Vector) Mismatch(dir crypto.Direction, got []byte) int {
	want := v.Expected(dir)
	n := v.copies()
	seg := len(want) / n
	for i := 0; i < n; i++ {
		lo, hi := i*seg, (i+1)*seg
		if i == n-1 {
			hi = len(want)
		}
		if hi > len(got) || !bytes.Equal(got[lo:hi], want[lo:hi]) {
			return lo
		}
	}
	if len(got) != len(want) {
		return len(want)
	}
	return -1
}

// Vectors returns every built-in vector in report order. The slices are
// freshly decoded on each call, so callers may modify them.
func Vectors() []Vector {
	var all []Vector
	all = append(all, ecbVectors()...)
	all = append(all, cbcVectors()...)
	all = append(all, ctrVectors()...)
	all = append(all, gcmVectors()...)
	return all
}

// Filter returns the vectors of one mechanism, or all of them for zero.
func Filter(vectors []Vector, mech crypto.Mechanism) []Vector {
	if mech == 0 {
		return vectors
	}
	var out []Vector
	for _, v := range vectors {
		if v.Mechanism == mech {
			out = append(out, v)
		}
	}
	return out
}

const (
	sourceCAVP    = "NIST CAVP AESAVS"
	sourceFIPS197 = "FIPS-197 Appendix C"
	sourceSP80038 = "NIST SP 800-38A"
	sourceGCM     = "GCM specification Appendix B"
)

func ecbVectors() []Vector {
	zeros, ones := strings.Repeat("00", 16), strings.Repeat("ff", 16)
	fips := "00112233445566778899aabbccddeeff"
	return []Vector{
		ecb(1, sourceCAVP, zeros, ones, "3f5b8cc9ea855a0afa7347d23e8d664e"),
		ecb(2, sourceCAVP, ones, zeros, "a1f6258c877d5fcd8964484538bfc92c"),
		ecb(3, sourceCAVP, strings.Repeat("00", 24), ones, "b13db4da1f718bc6904797c82bcf2d32"),
		ecb(4, sourceCAVP, strings.Repeat("ff", 24), zeros, "dd8a493514231cbf56eccee4c40889fb"),
		ecb(5, sourceCAVP, strings.Repeat("00", 32), ones, "acdace8078a32b1a182bfa4987ca1347"),
		ecb(6, sourceCAVP, strings.Repeat("ff", 32), zeros, "4bf85f1b5d54adbc307b0a048389adcb"),
		ecb(7, sourceFIPS197, "000102030405060708090a0b0c0d0e0f", fips, "69c4e0d86a7b0430d8cdb78070b4c55a"),
		ecb(8, sourceFIPS197, "000102030405060708090a0b0c0d0e0f1011121314151617", fips, "dda97ca4864cdfe06eaf70a0ec0d7191"),
		ecb(9, sourceFIPS197, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", fips, "8ea2b7ca516745bfeafc49904b496089"),
	}
}

func ecb(n int, source, key, pt, ct string) Vector {
	return Vector{
		Mechanism:  crypto.MechanismECB,
		Number:     n,
		Source:     source,
		Key:        mustHex(key),
		Plaintext:  mustHex(pt),
		Ciphertext: mustHex(ct),
		Copies:     ECBCopies,
	}
}

// SP 800-38A F.2 and F.5 share the plaintext and keys.
const (
	sp80038Plaintext = "6bc1bee22e409f96e93d7e117393172a" +
		"ae2d8a571e03ac9c9eb76fac45af8e51" +
		"30c81c46a35ce411e5fbc1191a0a52ef" +
		"f69f2445df4f9b17ad2b417be66c3710"
	sp80038Key128 = "2b7e151628aed2a6abf7158809cf4f3c"
	sp80038Key192 = "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b"
	sp80038Key256 = "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"
)

func cbcVectors() []Vector {
	iv := "000102030405060708090a0b0c0d0e0f"
	return []Vector{
		{
			Mechanism: crypto.MechanismCBC, Number: 1, Source: sourceSP80038,
			Key: mustHex(sp80038Key128), IV: mustHex(iv), Plaintext: mustHex(sp80038Plaintext),
			Ciphertext: mustHex("7649abac8119b246cee98e9b12e9197d" +
				"5086cb9b507219ee95db113a917678b2" +
				"73bed6b8e3c1743b7116e69e22229516" +
				"3ff1caa1681fac09120eca307586e1a7"),
		},
		{
			Mechanism: crypto.MechanismCBC, Number: 2, Source: sourceSP80038,
			Key: mustHex(sp80038Key192), IV: mustHex(iv), Plaintext: mustHex(sp80038Plaintext),
			Ciphertext: mustHex("4f021db243bc633d7178183a9fa071e8" +
				"b4d9ada9ad7dedf4e5e738763f69145a" +
				"571b242012fb7ae07fa9baac3df102e0" +
				"08b0e27988598881d920a9e64f5615cd"),
		},
		{
			Mechanism: crypto.MechanismCBC, Number: 3, Source: sourceSP80038,
			Key: mustHex(sp80038Key256), IV: mustHex(iv), Plaintext: mustHex(sp80038Plaintext),
			Ciphertext: mustHex("f58c4c04d6e5f1ba779eabfb5f7bfbd6" +
				"9cfc4e967edb808d679f777bc6702c7d" +
				"39f23369a9d9bacfa530e26304231461" +
				"b2eb05e2c39be9fcda6c19078c6a9d1b"),
		},
	}
}

func ctrVectors() []Vector {
	counter := "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"
	return []Vector{
		{
			Mechanism: crypto.MechanismCTR, Number: 1, Source: sourceSP80038,
			Key: mustHex(sp80038Key128), IV: mustHex(counter), CounterBits: 128,
			Plaintext: mustHex(sp80038Plaintext),
			Ciphertext: mustHex("874d6191b620e3261bef6864990db6ce" +
				"9806f66b7970fdff8617187bb9fffdff" +
				"5ae4df3edbd5d35e5b4f09020db03eab" +
				"1e031dda2fbe03d1792170a0f3009cee"),
		},
		{
			Mechanism: crypto.MechanismCTR, Number: 2, Source: sourceSP80038,
			Key: mustHex(sp80038Key192), IV: mustHex(counter), CounterBits: 128,
			Plaintext: mustHex(sp80038Plaintext),
			Ciphertext: mustHex("1abc932417521ca24f2b0459fe7e6e0b" +
				"090339ec0aa6faefd5ccc2c6f4ce8e94" +
				"1e36b26bd1ebc670d1bd1d665620abf7" +
				"4f78a7f6d29809585a97daec58c6b050"),
		},
		{
			Mechanism: crypto.MechanismCTR, Number: 3, Source: sourceSP80038,
			Key: mustHex(sp80038Key256), IV: mustHex(counter), CounterBits: 128,
			Plaintext: mustHex(sp80038Plaintext),
			Ciphertext: mustHex("601ec313775789a5b7a7f504bbf3d228" +
				"f443e3ca4d62b59aca84e990cacaf5c5" +
				"2b0930daa23de94ce87017ba2d84988d" +
				"dfc9c58db67aada613c2dd08457941a6"),
		},
	}
}

const (
	gcmKey3 = "feffe9928665731c6d6a8f9467308308"
	gcmIV3  = "cafebabefacedbaddecaf888"
	gcmPT3  = "d9313225f88406e5a55909c5aff5269a" +
		"86a7a9531534f7da2e4c303d8a318a72" +
		"1c3c0c95956809532fcf0e2449a6b525" +
		"b16aedf5aa0de657ba637b391aafd255"
	gcmCT3 = "42831ec2217774244b7221b784d0d49c" +
		"e3aa212f2c02a4e035c17e2329aca12e" +
		"21d514b25466931c7d8f6a5aac84aa05" +
		"1ba30b396a0aac973d58e091473f5985"
	gcmAAD4 = "feedfacedeadbeeffeedfacedeadbeefabaddad2"
)

func gcmVectors() []Vector {
	zeroIV := strings.Repeat("00", 12)
	pt60 := mustHex(gcmPT3)[:60]
	return []Vector{
		{
			Mechanism: crypto.MechanismGCM, Number: 1, Source: sourceGCM,
			Key: mustHex(strings.Repeat("00", 16)), IV: mustHex(zeroIV),
			Tag: mustHex("58e2fccefa7e3061367f1d57a4e7455a"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 2, Source: sourceGCM,
			Key: mustHex(strings.Repeat("00", 16)), IV: mustHex(zeroIV),
			Plaintext:  mustHex(strings.Repeat("00", 16)),
			Ciphertext: mustHex("0388dace60b6a392f328c2b971b2fe78"),
			Tag:        mustHex("ab6e47d42cec13bdf53a67b21257bddf"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 3, Source: sourceGCM,
			Key: mustHex(gcmKey3), IV: mustHex(gcmIV3),
			Plaintext:  mustHex(gcmPT3),
			Ciphertext: mustHex(gcmCT3),
			Tag:        mustHex("4d5c2af327cd64a62cf35abd2ba6fab4"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 4, Source: sourceGCM,
			Key: mustHex(gcmKey3), IV: mustHex(gcmIV3), AAD: mustHex(gcmAAD4),
			Plaintext:  pt60,
			Ciphertext: mustHex(gcmCT3)[:60],
			Tag:        mustHex("5bc94fbc3221a5db94fae95ae7121a47"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 5, Source: sourceGCM,
			Key: mustHex(gcmKey3), IV: mustHex("cafebabefacedbad"), AAD: mustHex(gcmAAD4),
			Plaintext: mustHex(gcmPT3)[:60],
			Ciphertext: mustHex("61353b4c2806934a777ff51fa22a4755" +
				"699b2a714fcdc6f83766e5f97b6c7423" +
				"73806900e49f24b22b097544d4896b42" +
				"4989b5e1ebac0f07c23f4598"),
			Tag: mustHex("3612d2e79e3b0785561be14aaca2fccb"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 6, Source: sourceGCM,
			Key: mustHex(gcmKey3),
			IV: mustHex("9313225df88406e555909c5aff5269aa" +
				"6a7a9538534f7da1e4c303d2a318a728" +
				"c3c0c95156809539fcf0e2429a6b5254" +
				"16aedbf5a0de6a57a637b39b"),
			AAD:       mustHex(gcmAAD4),
			Plaintext: mustHex(gcmPT3)[:60],
			Ciphertext: mustHex("8ce24998625615b603a033aca13fb894" +
				"be9112a5c3a211a8ba262a3cca7e2ca7" +
				"01e4a9a4fba43c90ccdcb281d48c7c6f" +
				"d62875d2aca417034c34aee5"),
			Tag: mustHex("619cc5aefffe0bfa462af43c1699d050"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 7, Source: sourceGCM,
			Key: mustHex(strings.Repeat("00", 24)), IV: mustHex(zeroIV),
			Tag: mustHex("cd33b28ac773f74ba00ed1f312572435"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 8, Source: sourceGCM,
			Key: mustHex(strings.Repeat("00", 24)), IV: mustHex(zeroIV),
			Plaintext:  mustHex(strings.Repeat("00", 16)),
			Ciphertext: mustHex("98e7247c07f0fe411c267e4384b0f600"),
			Tag:        mustHex("2ff58d80033927ab8ef4d4587514f0fb"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 13, Source: sourceGCM,
			Key: mustHex(strings.Repeat("00", 32)), IV: mustHex(zeroIV),
			Tag: mustHex("530f8afbc74536b9a963b4f1c4cb738b"),
		},
		{
			Mechanism: crypto.MechanismGCM, Number: 14, Source: sourceGCM,
			Key: mustHex(strings.Repeat("00", 32)), IV: mustHex(zeroIV),
			Plaintext:  mustHex(strings.Repeat("00", 16)),
			Ciphertext: mustHex("cea7403d4d606b6e074ec5d3baf39d18"),
			Tag:        mustHex("d0d1c8a799996bf0265b98b5d48ab919"),
		},
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("kat: bad hex literal: " + err.Error())
	}
	return b
}
