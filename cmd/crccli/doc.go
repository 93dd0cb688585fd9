/*
Crccli computes a CRC checksum over one or more files, or standard input,
using the parametric engine in package crc.

Command-line Flags:

	-algo="crc-32/iso-hdlc"

Sets the catalog algorithm to use, by canonical name or any registered
alias (case-insensitive), e.g. "crc-16/kermit" or "crc-ccitt". See
package catalog for the full list.

	-model=""

Path to a YAML file describing a custom 7-parameter model (width, poly,
init, xor_out, ref_in, and optionally ref_out/ref_reg, which default to
ref_in). Overrides -algo when set.

	-strategy="full"

Selects the calculation strategy: tableless, full, small, ext-full or
ext-small. All five produce identical results; they differ in memory use
and per-byte cost. See package crc's Strategy type.

	-format="plain"

Sets the result output format: plain, csv, json, xml or gob. Plain and
csv write one line per input; json, xml and gob write one encoded value
per input with no enclosing container.

	-logfile="/dev/stderr"

Sets the destination for structured event logs (distinct from -format,
which governs checksum results written to stdout).

	-selftest=false

Instead of computing a checksum, verifies that every catalog entry's
published check value (its checksum over the ASCII string "123456789")
and residue constant reproduce under the core engine, then exits
nonzero if any entry fails.

Positional arguments name input files; if none are given, crccli reads a
single input from standard input.
*/
package main
