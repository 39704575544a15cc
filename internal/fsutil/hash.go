package fsutil

import (
	"crypto/sha256"
	"io"
	"os"
	"sync"

	"github.com/klauspost/cpuid/v2"

	"github.com/hapax/vaultbak/internal/debug"
)

// hashChunkSize bounds memory use independent of file size, per §5.
const hashChunkSize = 32 << 20 // 32 MiB

var logHashStrategyOnce sync.Once

// HashFile returns the SHA-256 digest of the file at path, read in
// hashChunkSize chunks. crypto/sha256 already dispatches to the CPU's
// AVX2/SHA-NI assembly implementation internally; the one-time cpuid probe
// here only logs which path the runtime picked, the way keshon-bvc's hasher
// selects its strategy up front instead of discovering it per call.
func HashFile(path string) ([32]byte, uint64, error) {
	logHashStrategyOnce.Do(logHashStrategy)

	var digest [32]byte

	f, err := os.Open(path)
	if err != nil {
		return digest, 0, ioError("open", path, err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	var total uint64

	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			total += uint64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return digest, 0, ioError("read", path, err)
		}
	}

	copy(digest[:], h.Sum(nil))
	return digest, total, nil
}

func logHashStrategy() {
	if cpuid.CPU.Supports(cpuid.SHA, cpuid.AVX2) {
		debug.Log("hashing: CPU supports SHA/AVX2 acceleration (%s)", cpuid.CPU.BrandName)
		return
	}
	debug.Log("hashing: falling back to portable SHA-256 (%s)", cpuid.CPU.BrandName)
}
