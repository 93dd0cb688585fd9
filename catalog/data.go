package catalog

import "github.com/bemasher/paramcrc/crc"

// p builds a Params value with RefOut=RefReg=RefIn, the convention every
// entry in this catalog uses -- none of the RevEng algorithms below cross
// ref_in and ref_out.
func p(width int, poly, init, xorOut uint64, refIn bool) crc.Params {
	return crc.Params{Width: width, Poly: poly, Init: init, XorOut: xorOut, RefIn: refIn, RefOut: refIn, RefReg: refIn}
}

// Transcribed from the crc8/crc16/crc32/crc64 namespaces of the reference
// single-header implementation this module's core engine is grounded on,
// cross-checked against the RevEng CRC catalogue
// (https://reveng.sourceforge.io/crc-catalogue/all.htm).
func init() {
	Register("CRC-8/ROHC", nil, p(8, 0x07, 0xff, 0x00, true), 0xd0, 0x00)
	Register("CRC-8/I-432-1", []string{"CRC-8/ITU"}, p(8, 0x07, 0x00, 0x55, false), 0xa1, 0xac)
	Register("CRC-8/SMBUS", []string{"CRC-8"}, p(8, 0x07, 0x00, 0x00, false), 0xf4, 0x00)
	Register("CRC-8/TECH-3250", []string{"CRC-8/AES", "CRC-8/EBU"}, p(8, 0x1d, 0xff, 0x00, true), 0x97, 0x00)
	Register("CRC-8/GSM-A", nil, p(8, 0x1d, 0x00, 0x00, false), 0x37, 0x00)
	Register("CRC-8/MIFARE-MAD", nil, p(8, 0x1d, 0xc7, 0x00, false), 0x99, 0x00)
	Register("CRC-8/I-CODE", nil, p(8, 0x1d, 0xfd, 0x00, false), 0x7e, 0x00)
	Register("CRC-8/HITAG", nil, p(8, 0x1d, 0xff, 0x00, false), 0xb4, 0x00)
	Register("CRC-8/SAE-J1850", nil, p(8, 0x1d, 0xff, 0xff, false), 0x4b, 0xc4)
	Register("CRC-8/OPENSAFETY", nil, p(8, 0x2f, 0x00, 0x00, false), 0x3e, 0x00)
	Register("CRC-8/AUTOSAR", nil, p(8, 0x2f, 0xff, 0xff, false), 0xdf, 0x42)
	Register("CRC-8/MAXIM-DOW", []string{"CRC-8/MAXIM", "CRC-8/DOW-CRC"}, p(8, 0x31, 0x00, 0x00, true), 0xa1, 0x00)
	Register("CRC-8/NRSC-5", nil, p(8, 0x31, 0xff, 0x00, false), 0xf7, 0x00)
	Register("CRC-8/DARC", nil, p(8, 0x39, 0x00, 0x00, true), 0x15, 0x00)
	Register("CRC-8/GSM-B", nil, p(8, 0x49, 0x00, 0xff, false), 0x94, 0x53)
	Register("CRC-8/WCDMA", nil, p(8, 0x9b, 0x00, 0x00, true), 0x25, 0x00)
	Register("CRC-8/LTE", nil, p(8, 0x9b, 0x00, 0x00, false), 0xea, 0x00)
	Register("CRC-8/CDMA2000", nil, p(8, 0x9b, 0xff, 0x00, false), 0xda, 0x00)
	Register("CRC-8/BLUETOOTH", nil, p(8, 0xa7, 0x00, 0x00, true), 0x26, 0x00)
	Register("CRC-8/DVB-S2", nil, p(8, 0xd5, 0x00, 0x00, false), 0xbc, 0x00)

	Register("CRC-16/DECT-X", []string{"X-CRC-16"}, p(16, 0x0589, 0x0000, 0x0000, false), 0x007f, 0x0000)
	Register("CRC-16/DECT-R", []string{"R-CRC-16"}, p(16, 0x0589, 0x0000, 0x0001, false), 0x007e, 0x0589)
	Register("CRC-16/NRSC-5", nil, p(16, 0x080b, 0xffff, 0x0000, true), 0xa066, 0x0000)
	Register("CRC-16/DNP", nil, p(16, 0x3d65, 0x0000, 0xffff, true), 0xea82, 0x66c5)
	Register("CRC-16/EN-13757", nil, p(16, 0x3d65, 0x0000, 0xffff, false), 0xc2b7, 0xa366)
	Register("CRC-16/KERMIT", []string{"CRC-16/BLUETOOTH", "CRC-16/CCITT", "CRC-16/CCITT-TRUE", "CRC-16/V-41-LSB", "CRC-CCITT"}, p(16, 0x1021, 0x0000, 0x0000, true), 0x2189, 0x0000)
	Register("CRC-16/TMS37157", nil, p(16, 0x1021, 0x89ec, 0x0000, true), 0x26b1, 0x0000)
	Register("CRC-16/RIELLO", nil, p(16, 0x1021, 0xb2aa, 0x0000, true), 0x63d0, 0x0000)
	Register("CRC-16/ISO-IEC-14443-3-A", []string{"CRC-A"}, p(16, 0x1021, 0xc6c6, 0x0000, true), 0xbf05, 0x0000)
	Register("CRC-16/MCRF4XX", nil, p(16, 0x1021, 0xffff, 0x0000, true), 0x6f91, 0x0000)
	Register("CRC-16/IBM-SDLC", []string{"CRC-16/ISO-HDLC", "CRC-16/ISO-IEC-14443-3-B", "CRC-16/X-25", "CRC-B", "X-25"}, p(16, 0x1021, 0xffff, 0xffff, true), 0x906e, 0xf0b8)
	Register("CRC-16/XMODEM", []string{"CRC-16/ACORN", "CRC-16/LTE", "CRC-16/V-41-MSB", "XMODEM", "ZMODEM"}, p(16, 0x1021, 0x0000, 0x0000, false), 0x31c3, 0x0000)
	Register("CRC-16/GSM", nil, p(16, 0x1021, 0x0000, 0xffff, false), 0xce3c, 0x1d0f)
	Register("CRC-16/SPI-FUJITSU", []string{"CRC-16/AUG-CCITT"}, p(16, 0x1021, 0x1d0f, 0x0000, false), 0xe5cc, 0x0000)
	Register("CRC-16/IBM-3740", []string{"CRC-16/AUTOSAR", "CRC-16/CCITT-FALSE"}, p(16, 0x1021, 0xffff, 0x0000, false), 0x29b1, 0x0000)
	Register("CRC-16/GENIBUS", []string{"CRC-16/DARC", "CRC-16/EPC", "CRC-16/EPC-C1G2", "CRC-16/I-CODE"}, p(16, 0x1021, 0xffff, 0xffff, false), 0xd64e, 0x1d0f)
	Register("CRC-16/PROFIBUS", []string{"CRC-16/IEC-61158-2"}, p(16, 0x1dcf, 0xffff, 0xffff, false), 0xa819, 0xe394)
	Register("CRC-16/OPENSAFETY-A", nil, p(16, 0x5935, 0x0000, 0x0000, false), 0x5d38, 0x0000)
	Register("CRC-16/M17", nil, p(16, 0x5935, 0xffff, 0x0000, false), 0x772b, 0x0000)
	Register("CRC-16/LJ1200", nil, p(16, 0x6f63, 0x0000, 0x0000, false), 0xbdf4, 0x0000)
	Register("CRC-16/OPENSAFETY-B", nil, p(16, 0x755b, 0x0000, 0x0000, false), 0x20fe, 0x0000)
	Register("CRC-16/ARC", []string{"ARC", "CRC-16", "CRC-16/LHA", "CRC-IBM"}, p(16, 0x8005, 0x0000, 0x0000, true), 0xbb3d, 0x0000)
	Register("CRC-16/MAXIM-DOW", []string{"CRC-16/MAXIM"}, p(16, 0x8005, 0x0000, 0xffff, true), 0x44c2, 0xb001)
	Register("CRC-16/MODBUS", nil, p(16, 0x8005, 0xffff, 0x0000, true), 0x4b37, 0x0000)
	Register("CRC-16/USB", nil, p(16, 0x8005, 0xffff, 0xffff, true), 0xb4c8, 0xb001)
	Register("CRC-16/UMTS", []string{"CRC-16/BUYPASS", "CRC-16/VERIFONE"}, p(16, 0x8005, 0x0000, 0x0000, false), 0xfee8, 0x0000)
	Register("CRC-16/DDS-110", nil, p(16, 0x8005, 0x800d, 0x0000, false), 0x9ecf, 0x0000)
	Register("CRC-16/CMS", nil, p(16, 0x8005, 0xffff, 0x0000, false), 0xaee7, 0x0000)
	Register("CRC-16/T10-DIF", nil, p(16, 0x8bb7, 0x0000, 0x0000, false), 0xd0db, 0x0000)
	Register("CRC-16/TELEDISK", nil, p(16, 0xa097, 0x0000, 0x0000, false), 0x0fb3, 0x0000)
	Register("CRC-16/CDMA2000", nil, p(16, 0xc867, 0xffff, 0x0000, false), 0x4c06, 0x0000)

	Register("CRC-32/XFER", nil, p(32, 0x000000af, 0x00000000, 0x00000000, false), 0xbd0be338, 0x00000000)
	Register("CRC-32/JAMCRC", nil, p(32, 0x04c11db7, 0xffffffff, 0x00000000, true), 0x340bc6d9, 0x00000000)
	Register("CRC-32/ISO-HDLC", []string{"CRC-32", "CRC-32/ADCCP", "CRC-32/V-42", "CRC-32/XZ", "PKZIP"}, p(32, 0x04c11db7, 0xffffffff, 0xffffffff, true), 0xcbf43926, 0xdebb20e3)
	Register("CRC-32/CKSUM", []string{"CRC-32/POSIX"}, p(32, 0x04c11db7, 0x00000000, 0xffffffff, false), 0x765e7680, 0xc704dd7b)
	Register("CRC-32/MPEG-2", nil, p(32, 0x04c11db7, 0xffffffff, 0x00000000, false), 0x0376e6e7, 0x00000000)
	Register("CRC-32/BZIP2", []string{"CRC-32/AAL5", "CRC-32/DECT-B", "B-CRC-32"}, p(32, 0x04c11db7, 0xffffffff, 0xffffffff, false), 0xfc891918, 0xc704dd7b)
	Register("CRC-32/ISCSI", []string{"CRC-32/BASE91-C", "CRC-32/CASTAGNOLI", "CRC-32/INTERLAKEN", "CRC-32C"}, p(32, 0x1edc6f41, 0xffffffff, 0xffffffff, true), 0xe3069283, 0xb798b438)
	Register("CRC-32/MEF", nil, p(32, 0x741b8cd7, 0xffffffff, 0x00000000, true), 0xd2c22f51, 0x00000000)
	Register("CRC-32/CD-ROM-EDC", nil, p(32, 0x8001801b, 0x00000000, 0x00000000, true), 0x6ec2edc4, 0x00000000)
	Register("CRC-32/AIXM", []string{"CRC-32Q"}, p(32, 0x814141ab, 0x00000000, 0x00000000, false), 0x3010bf7f, 0x00000000)
	Register("CRC-32/BASE91-D", []string{"CRC-32D"}, p(32, 0xa833982b, 0xffffffff, 0xffffffff, true), 0x87315576, 0x45270551)
	Register("CRC-32/AUTOSAR", nil, p(32, 0xf4acfb13, 0xffffffff, 0xffffffff, true), 0x1697d06a, 0x904cddbf)

	Register("CRC-64/GO-ISO", nil, p(64, 0x000000000000001b, 0xffffffffffffffff, 0xffffffffffffffff, true), 0xb90956c775a41001, 0x5300000000000000)
	Register("CRC-64/MS", nil, p(64, 0x259c84cba6426349, 0xffffffffffffffff, 0x0000000000000000, true), 0x75d4b74f024eceea, 0x0000000000000000)
	Register("CRC-64/XZ", []string{"CRC-64/GO-ECMA"}, p(64, 0x42f0e1eba9ea3693, 0xffffffffffffffff, 0xffffffffffffffff, true), 0x995dc9bbdf1939fa, 0x49958c9abd7d353f)
	Register("CRC-64/ECMA-182", []string{"CRC-64"}, p(64, 0x42f0e1eba9ea3693, 0x0000000000000000, 0x0000000000000000, false), 0x6c40df5f0b497347, 0x0000000000000000)
	Register("CRC-64/WE", nil, p(64, 0x42f0e1eba9ea3693, 0xffffffffffffffff, 0xffffffffffffffff, false), 0x62ec59e3f1a4f00a, 0xfcacbebd5931a992)
	Register("CRC-64/REDIS", nil, p(64, 0xad93d23594c935a9, 0x0000000000000000, 0x0000000000000000, true), 0xe9c6d914c4b8d9ca, 0x0000000000000000)
}
