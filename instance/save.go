package instance

import (
	"bufio"
	"fmt"
	"io"
)

// Save writes inst in the exact .fcs layout Load expects: a comment line
// (inst.Comment, or a generated one when that is empty), the `p k m` line,
// the `x` marker, then one `<value> 0` line
// per node with values converted back to the file format's 1-based
// convention.
func Save(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)

	comment := inst.Comment
	if comment == "" {
		comment = fmt.Sprintf("starswap instance, k=%d m=%d", inst.K, inst.M)
	}
	if _, err := fmt.Fprintf(bw, "c %s\n", comment); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "p %d %d\n", inst.K, inst.M); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, "x"); err != nil {
		return err
	}
	for _, v := range inst.X {
		if _, err := fmt.Fprintf(bw, "%d 0\n", v+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
