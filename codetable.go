package exo

// cmdKind enumerates the command kinds of the code table.
type cmdKind byte

const (
	cmdLiteral cmdKind = iota // run of literal bytes
	cmdCopy2                  // back reference of length 2
	cmdCopy3                  // back reference of length 3
	cmdGamma                  // back reference with gamma-coded length
)

// cmdEntry is one slot of the command table. For cmdLiteral param holds the
// run length minus one, for cmdCopy2 and cmdCopy3 the number of bits coding
// the distance. cmdGamma carries no parameter.
type cmdEntry struct {
	kind  cmdKind
	param byte
}

const (
	// number of distance bits of the short copy commands
	shortDistBits = 10
	// litRun literal entries open each block of blockLen entries
	litRun   = 32
	blockLen = 36
	tableLen = 4*blockLen + 1
)

// newCmdTable generates the command table: four blocks of 32 literal
// entries followed by two length-2 and two length-3 copy entries, and the
// gamma-copy sentinel at index 144. The table depends on nothing but the
// constants above; the prefix code below indexes into fixed sub-ranges of
// the blocks.
func newCmdTable() *[tableLen]cmdEntry {
	t := new([tableLen]cmdEntry)
	i := 0
	for b := 0; b < 4; b++ {
		for j := 0; j < litRun; j++ {
			t[i] = cmdEntry{cmdLiteral, byte(j)}
			i++
		}
		t[i] = cmdEntry{cmdCopy2, shortDistBits}
		t[i+1] = cmdEntry{cmdCopy2, shortDistBits}
		t[i+2] = cmdEntry{cmdCopy3, shortDistBits}
		t[i+3] = cmdEntry{cmdCopy3, shortDistBits}
		i += 4
	}
	t[i] = cmdEntry{kind: cmdGamma}
	return t
}

// cmdTable is generated once and never mutated.
var cmdTable = newCmdTable()

// cmdLevels describes the prefix code selecting a command. On each level a
// zero bit terminates the descent and an index of the given width is read
// into the given table base; a one bit descends to the next level. The
// all-ones path selects the gamma sentinel.
var cmdLevels = [4]struct{ bits, base int }{
	{5, 3 * blockLen},
	{4, 1 * blockLen},
	{3, 2 * blockLen},
	{2, 0},
}

// readCmd walks the prefix code and returns the selected table entry. A
// read failure anywhere on the path means the stream has ended; the format
// has no in-band terminator.
func (br *bitReader) readCmd() (e cmdEntry, err error) {
	for _, lv := range cmdLevels {
		b, err := br.readBit()
		if err != nil {
			return cmdEntry{}, err
		}
		if b == 0 {
			i, err := br.readBits(lv.bits)
			if err != nil {
				return cmdEntry{}, err
			}
			return cmdTable[lv.base+int(i)], nil
		}
	}
	return cmdTable[tableLen-1], nil
}
