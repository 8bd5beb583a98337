package lemmy

import "time"

// Record types for the subset of the Lemmy HTTP API (v3) that lodestar
// consumes. Field names and JSON keys follow the upstream API schema; only
// fields the moderation tooling reads are included.

type Person struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DisplayName *string `json:"display_name,omitempty"`
	ActorID     string  `json:"actor_id"`
	Local       bool    `json:"local"`
	Banned      bool    `json:"banned"`
	Deleted     bool    `json:"deleted"`
	Admin       bool    `json:"admin"`
	BotAccount  bool    `json:"bot_account"`
	Published   string  `json:"published"`
}

type Community struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	ActorID string `json:"actor_id"`
	Local   bool   `json:"local"`
	Removed bool   `json:"removed"`
	Hidden  bool   `json:"hidden"`
	NSFW    bool   `json:"nsfw"`
}

type Comment struct {
	ID            int64  `json:"id"`
	CreatorID     int64  `json:"creator_id"`
	PostID        int64  `json:"post_id"`
	Content       string `json:"content"`
	Removed       bool   `json:"removed"`
	Deleted       bool   `json:"deleted"`
	Distinguished bool   `json:"distinguished"`
	Published     string `json:"published"`
	Path          string `json:"path"`
}

type Post struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Body        *string `json:"body,omitempty"`
	URL         *string `json:"url,omitempty"`
	CreatorID   int64   `json:"creator_id"`
	CommunityID int64   `json:"community_id"`
	Removed     bool    `json:"removed"`
	Deleted     bool    `json:"deleted"`
	Locked      bool    `json:"locked"`
	NSFW        bool    `json:"nsfw"`
	Published   string  `json:"published"`
}

type CommentAggregates struct {
	CommentID  int64 `json:"comment_id"`
	Score      int64 `json:"score"`
	Upvotes    int64 `json:"upvotes"`
	Downvotes  int64 `json:"downvotes"`
	ChildCount int64 `json:"child_count"`
}

type PostAggregates struct {
	PostID    int64 `json:"post_id"`
	Score     int64 `json:"score"`
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	Comments  int64 `json:"comments"`
}

type CommentReport struct {
	ID                  int64  `json:"id"`
	CreatorID           int64  `json:"creator_id"`
	CommentID           int64  `json:"comment_id"`
	OriginalCommentText string `json:"original_comment_text"`
	Reason              string `json:"reason"`
	Resolved            bool   `json:"resolved"`
	ResolverID          *int64 `json:"resolver_id,omitempty"`
	Published           string `json:"published"`
}

type PostReport struct {
	ID               int64  `json:"id"`
	CreatorID        int64  `json:"creator_id"`
	PostID           int64  `json:"post_id"`
	OriginalPostName string `json:"original_post_name"`
	Reason           string `json:"reason"`
	Resolved         bool   `json:"resolved"`
	ResolverID       *int64 `json:"resolver_id,omitempty"`
	Published        string `json:"published"`
}

// Hydrated views, as returned by report listing and moderation endpoints. The
// same creator/resolver person record can appear in many views; dedup happens
// client-side, keyed on the numeric id.

type CommentReportView struct {
	CommentReport              CommentReport     `json:"comment_report"`
	Comment                    Comment           `json:"comment"`
	Post                       Post              `json:"post"`
	Community                  Community         `json:"community"`
	Creator                    Person            `json:"creator"`
	CommentCreator             Person            `json:"comment_creator"`
	Counts                     CommentAggregates `json:"counts"`
	CreatorBannedFromCommunity bool              `json:"creator_banned_from_community"`
	Resolver                   *Person           `json:"resolver,omitempty"`
}

type PostReportView struct {
	PostReport                 PostReport     `json:"post_report"`
	Post                       Post           `json:"post"`
	Community                  Community      `json:"community"`
	Creator                    Person         `json:"creator"`
	PostCreator                Person         `json:"post_creator"`
	Counts                     PostAggregates `json:"counts"`
	CreatorBannedFromCommunity bool           `json:"creator_banned_from_community"`
	Resolver                   *Person        `json:"resolver,omitempty"`
}

type CommentView struct {
	Comment   Comment           `json:"comment"`
	Creator   Person            `json:"creator"`
	Post      Post              `json:"post"`
	Community Community         `json:"community"`
	Counts    CommentAggregates `json:"counts"`
}

type PostView struct {
	Post      Post           `json:"post"`
	Creator   Person         `json:"creator"`
	Community Community      `json:"community"`
	Counts    PostAggregates `json:"counts"`
}

type PersonView struct {
	Person Person `json:"person"`
}

// Request and response envelopes.

type ResolveCommentReportRequest struct {
	ReportID int64 `json:"report_id"`
	Resolved bool  `json:"resolved"`
}

type CommentReportResponse struct {
	CommentReportView CommentReportView `json:"comment_report_view"`
}

type ResolvePostReportRequest struct {
	ReportID int64 `json:"report_id"`
	Resolved bool  `json:"resolved"`
}

type PostReportResponse struct {
	PostReportView PostReportView `json:"post_report_view"`
}

type RemoveCommentRequest struct {
	CommentID int64   `json:"comment_id"`
	Removed   bool    `json:"removed"`
	Reason    *string `json:"reason,omitempty"`
}

type CommentResponse struct {
	CommentView CommentView `json:"comment_view"`
}

type RemovePostRequest struct {
	PostID  int64   `json:"post_id"`
	Removed bool    `json:"removed"`
	Reason  *string `json:"reason,omitempty"`
}

type PostResponse struct {
	PostView PostView `json:"post_view"`
}

type PurgeCommentRequest struct {
	CommentID int64   `json:"comment_id"`
	Reason    *string `json:"reason,omitempty"`
}

type PurgePostRequest struct {
	PostID int64   `json:"post_id"`
	Reason *string `json:"reason,omitempty"`
}

type PurgePersonRequest struct {
	PersonID int64   `json:"person_id"`
	Reason   *string `json:"reason,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type BanPersonRequest struct {
	PersonID   int64   `json:"person_id"`
	Ban        bool    `json:"ban"`
	RemoveData *bool   `json:"remove_data,omitempty"`
	Reason     *string `json:"reason,omitempty"`
	Expires    *int64  `json:"expires,omitempty"`
}

type BanPersonResponse struct {
	PersonView PersonView `json:"person_view"`
	Banned     bool       `json:"banned"`
}

type BanFromCommunityRequest struct {
	CommunityID int64   `json:"community_id"`
	PersonID    int64   `json:"person_id"`
	Ban         bool    `json:"ban"`
	RemoveData  *bool   `json:"remove_data,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	Expires     *int64  `json:"expires,omitempty"`
}

type BanFromCommunityResponse struct {
	PersonView PersonView `json:"person_view"`
	Banned     bool       `json:"banned"`
}

type ListCommentReportsResponse struct {
	CommentReports []CommentReportView `json:"comment_reports"`
}

type ListPostReportsResponse struct {
	PostReports []PostReportView `json:"post_reports"`
}

type CreatePrivateMessageRequest struct {
	Content     string `json:"content"`
	RecipientID int64  `json:"recipient_id"`
}

type PrivateMessageResponse struct {
	PrivateMessageView struct {
		PrivateMessage struct {
			ID        int64  `json:"id"`
			Content   string `json:"content"`
			Published string `json:"published"`
		} `json:"private_message"`
	} `json:"private_message_view"`
}

// ExpiresUnix converts an optional ban expiry into the unix-seconds form the
// API expects. Nil means a permanent ban.
func ExpiresUnix(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	n := t.Unix()
	return &n
}
