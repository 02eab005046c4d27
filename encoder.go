package huffzip

// Encode converts data into a BitSeq by appending each byte's code from the
// table in input order.
//
// Every byte of data must have an entry in the table, which is guaranteed
// when the table was derived from a tree built over data's own frequency
// table.  A missing code is a contract violation and fails the assertion in
// CodeTable.Code rather than being skipped.
//
func Encode(data []byte, ct CodeTable) BitSeq {
	var seq BitSeq
	for _, b := range data {
		seq.Append(ct.Code(b))
	}
	return seq
}
