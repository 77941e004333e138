package services

import (
	"fmt"
	"math/rand/v2"
	"time"
)

func generateAccountNumber() string {
	return fmt.Sprintf("%010d", time.Now().UnixNano()%10_000_000_000)
}

func generateCardNumber() string {
	return fmt.Sprintf("4%03d%012d", rand.N(1000), rand.N(int64(1_000_000_000_000)))
}

func generateCVV() string {
	return fmt.Sprintf("%03d", rand.N(1000))
}
