// Package chunkio is the file-chunking collaborator described in spec §6:
// it reads and writes files as fixed 8-byte chunks and drives a
// cipher.Cipher block by block. The core ciphers never touch files
// directly; this package is the only thing that does.
package chunkio

import (
	"fmt"
	"io"

	"github.com/kdravlev/blockcipher/cipher"
	blkerrors "github.com/kdravlev/blockcipher/errors"
)

// ChunkSize is the fixed chunk width files are read and written in.
const ChunkSize = 8

// Reader reads a stream as a sequence of fixed ChunkSize-byte chunks.
type Reader struct {
	r io.Reader
}

// NewReader wraps r as a chunked reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next reads the next chunk. chunksRead is 0 at end of file — matching
// the collaborator contract in spec §6 — and 1 otherwise. bytesInChunk
// is less than ChunkSize only for a truncated final chunk.
func (r *Reader) Next() (chunk [ChunkSize]byte, chunksRead int, bytesInChunk int, err error) {
	n, err := io.ReadFull(r.r, chunk[:])
	switch {
	case err == io.EOF:
		return chunk, 0, 0, nil
	case err == io.ErrUnexpectedEOF:
		return chunk, 1, n, nil
	case err != nil:
		return chunk, 0, 0, err
	default:
		return chunk, 1, n, nil
	}
}

// Writer writes fixed ChunkSize-byte chunks verbatim.
//
// The source this toolkit descends from stripped trailing zero bytes
// from each chunk before writing, silently truncating genuine
// zero-valued plaintext or ciphertext (spec §9). This writer never does
// that: every byte passed to WriteChunk reaches the underlying stream.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as a chunked writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteChunk writes the first n bytes of chunk verbatim.
func (w *Writer) WriteChunk(chunk [ChunkSize]byte, n int) error {
	_, err := w.w.Write(chunk[:n])
	return err
}

// Transform streams src through c block by block — assembling c's block
// size out of ChunkSize-byte chunks as spec §6 requires for AES — and
// writes the result to dst. encrypt selects Encrypt over Decrypt.
//
// Files must carry an integral number of ChunkSize-byte chunks that in
// turn fill an integral number of blocks; this package implements no
// padding scheme (spec Non-goals), so a short final chunk or a partial
// final block is reported as a malformed-input error.
func Transform(dst io.Writer, src io.Reader, c cipher.Cipher, encrypt bool) error {
	blockSize := c.BlockSize()
	reader := NewReader(src)
	writer := NewWriter(dst)

	block := make([]byte, 0, blockSize)

	for {
		chunk, chunksRead, n, err := reader.Next()
		if err != nil {
			return fmt.Errorf("chunkio: read chunk: %w", err)
		}
		if chunksRead == 0 {
			break
		}
		if n != ChunkSize {
			return blkerrors.Annotate(blkerrors.ErrInvalidBlockSize,
				"chunkio: truncated final chunk (%d of %d bytes): %w", n, ChunkSize)
		}

		block = append(block, chunk[:n]...)
		if len(block) < blockSize {
			continue
		}

		var out []byte
		if encrypt {
			out, err = c.Encrypt(block)
		} else {
			out, err = c.Decrypt(block)
		}
		if err != nil {
			return fmt.Errorf("chunkio: %s: %w", verb(encrypt), err)
		}

		for i := 0; i < len(out); i += ChunkSize {
			var ch [ChunkSize]byte
			copy(ch[:], out[i:i+ChunkSize])
			if err := writer.WriteChunk(ch, ChunkSize); err != nil {
				return fmt.Errorf("chunkio: write chunk: %w", err)
			}
		}
		block = block[:0]
	}

	if len(block) != 0 {
		return blkerrors.Annotate(blkerrors.ErrInvalidBlockSize,
			"chunkio: %d trailing bytes do not fill a block: %w", len(block))
	}

	return nil
}

func verb(encrypt bool) string {
	if encrypt {
		return "encrypt"
	}
	return "decrypt"
}
