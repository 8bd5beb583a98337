package lemmy

import (
	"context"
	"fmt"
)

// Moderation and admin endpoint wrappers. Every method is a single fallible
// network call; callers own retry and sequencing policy.

func (c *Client) ResolveCommentReport(ctx context.Context, reportID int64, resolved bool) (*CommentReportView, error) {
	var out CommentReportResponse
	req := ResolveCommentReportRequest{ReportID: reportID, Resolved: resolved}
	if err := c.Do(ctx, Update, "comment/report/resolve", nil, &req, &out); err != nil {
		return nil, fmt.Errorf("resolving comment report %d: %w", reportID, err)
	}
	return &out.CommentReportView, nil
}

func (c *Client) ResolvePostReport(ctx context.Context, reportID int64, resolved bool) (*PostReportView, error) {
	var out PostReportResponse
	req := ResolvePostReportRequest{ReportID: reportID, Resolved: resolved}
	if err := c.Do(ctx, Update, "post/report/resolve", nil, &req, &out); err != nil {
		return nil, fmt.Errorf("resolving post report %d: %w", reportID, err)
	}
	return &out.PostReportView, nil
}

func (c *Client) RemoveComment(ctx context.Context, commentID int64, removed bool, reason *string) (*CommentView, error) {
	var out CommentResponse
	req := RemoveCommentRequest{CommentID: commentID, Removed: removed, Reason: reason}
	if err := c.Do(ctx, Procedure, "comment/remove", nil, &req, &out); err != nil {
		return nil, fmt.Errorf("removing comment %d: %w", commentID, err)
	}
	return &out.CommentView, nil
}

func (c *Client) RemovePost(ctx context.Context, postID int64, removed bool, reason *string) (*PostView, error) {
	var out PostResponse
	req := RemovePostRequest{PostID: postID, Removed: removed, Reason: reason}
	if err := c.Do(ctx, Procedure, "post/remove", nil, &req, &out); err != nil {
		return nil, fmt.Errorf("removing post %d: %w", postID, err)
	}
	return &out.PostView, nil
}

func (c *Client) PurgeComment(ctx context.Context, commentID int64, reason *string) error {
	var out SuccessResponse
	req := PurgeCommentRequest{CommentID: commentID, Reason: reason}
	if err := c.Do(ctx, Procedure, "admin/purge/comment", nil, &req, &out); err != nil {
		return fmt.Errorf("purging comment %d: %w", commentID, err)
	}
	if !out.Success {
		return fmt.Errorf("purging comment %d: server reported failure", commentID)
	}
	return nil
}

func (c *Client) PurgePost(ctx context.Context, postID int64, reason *string) error {
	var out SuccessResponse
	req := PurgePostRequest{PostID: postID, Reason: reason}
	if err := c.Do(ctx, Procedure, "admin/purge/post", nil, &req, &out); err != nil {
		return fmt.Errorf("purging post %d: %w", postID, err)
	}
	if !out.Success {
		return fmt.Errorf("purging post %d: server reported failure", postID)
	}
	return nil
}

func (c *Client) PurgePerson(ctx context.Context, personID int64, reason *string) error {
	var out SuccessResponse
	req := PurgePersonRequest{PersonID: personID, Reason: reason}
	if err := c.Do(ctx, Procedure, "admin/purge/person", nil, &req, &out); err != nil {
		return fmt.Errorf("purging person %d: %w", personID, err)
	}
	if !out.Success {
		return fmt.Errorf("purging person %d: server reported failure", personID)
	}
	return nil
}

// BanPerson sets or clears an instance-wide ban. Returns the resulting ban
// state as recorded by the server.
func (c *Client) BanPerson(ctx context.Context, personID int64, ban bool, reason *string, expires *int64) (bool, error) {
	var out BanPersonResponse
	req := BanPersonRequest{PersonID: personID, Ban: ban, Reason: reason, Expires: expires}
	if err := c.Do(ctx, Procedure, "user/ban", nil, &req, &out); err != nil {
		return false, fmt.Errorf("banning person %d: %w", personID, err)
	}
	return out.Banned, nil
}

// BanFromCommunity sets or clears a community-scoped ban.
func (c *Client) BanFromCommunity(ctx context.Context, communityID, personID int64, ban bool, reason *string, expires *int64) (bool, error) {
	var out BanFromCommunityResponse
	req := BanFromCommunityRequest{CommunityID: communityID, PersonID: personID, Ban: ban, Reason: reason, Expires: expires}
	if err := c.Do(ctx, Procedure, "community/ban_user", nil, &req, &out); err != nil {
		return false, fmt.Errorf("banning person %d from community %d: %w", personID, communityID, err)
	}
	return out.Banned, nil
}

func (c *Client) ListCommentReports(ctx context.Context, page, limit int64, unresolvedOnly bool, communityID *int64) ([]CommentReportView, error) {
	params := map[string]any{
		"page":            page,
		"limit":           limit,
		"unresolved_only": unresolvedOnly,
	}
	if communityID != nil {
		params["community_id"] = *communityID
	}
	var out ListCommentReportsResponse
	if err := c.Do(ctx, Query, "comment/report/list", params, nil, &out); err != nil {
		return nil, fmt.Errorf("listing comment reports: %w", err)
	}
	return out.CommentReports, nil
}

func (c *Client) ListPostReports(ctx context.Context, page, limit int64, unresolvedOnly bool, communityID *int64) ([]PostReportView, error) {
	params := map[string]any{
		"page":            page,
		"limit":           limit,
		"unresolved_only": unresolvedOnly,
	}
	if communityID != nil {
		params["community_id"] = *communityID
	}
	var out ListPostReportsResponse
	if err := c.Do(ctx, Query, "post/report/list", params, nil, &out); err != nil {
		return nil, fmt.Errorf("listing post reports: %w", err)
	}
	return out.PostReports, nil
}

func (c *Client) CreatePrivateMessage(ctx context.Context, recipientID int64, content string) error {
	var out PrivateMessageResponse
	req := CreatePrivateMessageRequest{Content: content, RecipientID: recipientID}
	if err := c.Do(ctx, Procedure, "private_message", nil, &req, &out); err != nil {
		return fmt.Errorf("sending private message to %d: %w", recipientID, err)
	}
	return nil
}
