package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Tree node ids are namespaced strings so category, module, topic and content
// ids never collide inside one treestore.

func categoryKey(id uint) string { return fmt.Sprintf("category:%d", id) }
func courseKey(id uint) string   { return fmt.Sprintf("course:%d", id) }
func moduleKey(id uint) string   { return fmt.Sprintf("module:%d", id) }
func topicKey(id uint) string    { return fmt.Sprintf("topic:%d", id) }
func contentKey(id uint) string  { return fmt.Sprintf("content:%d", id) }

func keyKind(key string) string {
	kind, _, _ := strings.Cut(key, ":")
	return kind
}

func keyID(key string) uint {
	_, raw, _ := strings.Cut(key, ":")
	id, _ := strconv.ParseUint(raw, 10, 64)
	return uint(id)
}
