package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/roach88/redline/contract"
)

// hashBlockSize is the read-block size for streaming hashing. Memory use is
// independent of upload size.
const hashBlockSize = 32 * 1024

// ContentHash computes the hex SHA-256 digest of the reader's bytes,
// streaming in fixed-size blocks. Read failures are returned as IO_ERROR.
func ContentHash(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, hashBlockSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n]) // sha256 Write never fails
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", contract.NewIO("read upload for hashing", err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes is a convenience for already-buffered uploads.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
