package modkit

import (
	"fmt"
	"strconv"
	"strings"
)

// ContentKind names the table a piece of content lives in.
type ContentKind string

const (
	KindPerson        = ContentKind("person")
	KindCommunity     = ContentKind("community")
	KindComment       = ContentKind("comment")
	KindPost          = ContentKind("post")
	KindCommentReport = ContentKind("comment_report")
	KindPostReport    = ContentKind("post_report")
)

// ContentKey identifies a piece of content uniquely and stably. It is the
// sole identity used for deduplication and diffing across refreshes: two keys
// are equal iff both fields are equal. Comparable, usable as a map key.
type ContentKey struct {
	Kind ContentKind
	ID   int64
}

func (k ContentKey) String() string {
	return string(k.Kind) + ":" + strconv.FormatInt(k.ID, 10)
}

// ParseContentKey parses the "kind:id" form produced by String.
func ParseContentKey(s string) (ContentKey, error) {
	kind, idStr, found := strings.Cut(s, ":")
	if !found {
		return ContentKey{}, fmt.Errorf("invalid content key: %q", s)
	}
	switch ContentKind(kind) {
	case KindPerson, KindCommunity, KindComment, KindPost, KindCommentReport, KindPostReport:
	default:
		return ContentKey{}, fmt.Errorf("unknown content kind: %q", kind)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return ContentKey{}, fmt.Errorf("invalid content key id: %q", idStr)
	}
	return ContentKey{Kind: ContentKind(kind), ID: id}, nil
}
