package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewConversationID 生成新的会话 ID / Generates a new conversation ID
func NewConversationID() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("conv_%d_%s", time.Now().UTC().Unix(), hex.EncodeToString(buf))
}
