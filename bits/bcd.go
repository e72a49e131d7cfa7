package bits

// BCD8 decodes a single binary-coded-decimal byte (two decimal digits, one
// per nibble) to its integer value.
func BCD8(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

// PutBCD8 encodes v (0..99) as a binary-coded-decimal byte.
func PutBCD8(v int) byte {
	return byte((v/10)<<4 | (v % 10))
}

// BCD16 decodes a two-byte binary-coded-decimal field (four decimal digits).
func BCD16(b []byte) int {
	return BCD8(b[0])*100 + BCD8(b[1])
}

// PutBCD16 encodes v (0..9999) into a two-byte binary-coded-decimal field.
func PutBCD16(b []byte, v int) {
	b[0] = PutBCD8(v / 100)
	b[1] = PutBCD8(v % 100)
}

// BCD24 decodes a three-byte binary-coded-decimal field (six decimal digits).
func BCD24(b []byte) int {
	return BCD8(b[0])*10000 + BCD8(b[1])*100 + BCD8(b[2])
}

// PutBCD24 encodes v (0..999999) into a three-byte binary-coded-decimal field.
func PutBCD24(b []byte, v int) {
	b[0] = PutBCD8(v / 10000)
	b[1] = PutBCD8((v / 100) % 100)
	b[2] = PutBCD8(v % 100)
}

// BCDTime3 decodes a 3-byte BCD HH:MM:SS field to a seconds-of-day count.
func BCDTime3(b []byte) int {
	return BCD8(b[0])*3600 + BCD8(b[1])*60 + BCD8(b[2])
}

// PutBCDTime3 encodes a seconds-of-day count as a 3-byte BCD HH:MM:SS field.
func PutBCDTime3(b []byte, secs int) {
	b[0] = PutBCD8(secs / 3600)
	b[1] = PutBCD8((secs / 60) % 60)
	b[2] = PutBCD8(secs % 60)
}

// BCD32 decodes a four-byte binary-coded-decimal field (eight decimal digits).
func BCD32(b []byte) uint32 {
	return uint32(BCD8(b[0]))*1000000 + uint32(BCD8(b[1]))*10000 + uint32(BCD8(b[2]))*100 + uint32(BCD8(b[3]))
}

// PutBCD32 encodes v (0..99999999) into a four-byte binary-coded-decimal field.
func PutBCD32(b []byte, v uint32) {
	b[0] = PutBCD8(int(v / 1000000 % 100))
	b[1] = PutBCD8(int(v / 10000 % 100))
	b[2] = PutBCD8(int(v / 100 % 100))
	b[3] = PutBCD8(int(v % 100))
}

// BCDTime2 decodes a 2-byte BCD MM:SS field to a seconds count.
func BCDTime2(b []byte) int {
	return BCD8(b[0])*60 + BCD8(b[1])
}

// PutBCDTime2 encodes a seconds count as a 2-byte BCD MM:SS field.
func PutBCDTime2(b []byte, secs int) {
	b[0] = PutBCD8(secs / 60)
	b[1] = PutBCD8(secs % 60)
}
