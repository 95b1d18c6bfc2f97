package youtube

import (
	"context"
	"strings"
)

// channelIDPrefix is the fixed prefix of canonical channel IDs.
const channelIDPrefix = "UC"

// ChannelRef identifies a resolved channel.
type ChannelRef struct {
	// ID is the canonical channel ID.
	ID string
	// UploadsPlaylistID is the channel's implicit uploads playlist.
	UploadsPlaylistID string
	// Title is the channel's display name.
	Title string
}

// ResolveChannel resolves a channel ID or legacy username into a
// ChannelRef. Identifiers carrying the canonical "UC" prefix are looked
// up directly by ID first; anything else, or a direct lookup that finds
// nothing, falls back to a username lookup. Returns ErrChannelNotFound
// when neither lookup yields a channel, and ErrNoUploadsPlaylist when
// the channel has no uploads playlist.
func (c *Client) ResolveChannel(ctx context.Context, identifier string) (*ChannelRef, error) {
	id, err := c.channelID(ctx, identifier)
	if err != nil {
		return nil, &APIError{Op: "resolve", Target: identifier, Err: err}
	}

	ref, err := c.channelDetails(ctx, id)
	if err != nil {
		return nil, &APIError{Op: "resolve", Target: identifier, Err: err}
	}
	return ref, nil
}

// channelID finds the canonical channel ID for an identifier.
func (c *Client) channelID(ctx context.Context, identifier string) (string, error) {
	if strings.HasPrefix(identifier, channelIDPrefix) {
		var found bool
		err := c.pacer.Call(ctx, func() error {
			resp, err := c.service.Channels.List([]string{"id"}).
				Id(identifier).
				Context(ctx).
				Do()
			if err != nil {
				return err
			}
			found = len(resp.Items) > 0
			return nil
		})
		if err != nil {
			return "", err
		}
		if found {
			return identifier, nil
		}
	}

	// Legacy username lookup.
	var id string
	err := c.pacer.Call(ctx, func() error {
		resp, err := c.service.Channels.List([]string{"id"}).
			ForUsername(identifier).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
		if len(resp.Items) == 0 {
			return ErrChannelNotFound
		}
		id = resp.Items[0].Id
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// channelDetails fetches the uploads playlist ID and display title
// for a resolved channel ID.
func (c *Client) channelDetails(ctx context.Context, channelID string) (*ChannelRef, error) {
	ref := &ChannelRef{ID: channelID}
	err := c.pacer.Call(ctx, func() error {
		resp, err := c.service.Channels.List([]string{"contentDetails", "snippet"}).
			Id(channelID).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
		if len(resp.Items) == 0 {
			return ErrNoUploadsPlaylist
		}

		ch := resp.Items[0]
		if ch.ContentDetails == nil || ch.ContentDetails.RelatedPlaylists == nil ||
			ch.ContentDetails.RelatedPlaylists.Uploads == "" {
			return ErrNoUploadsPlaylist
		}
		ref.UploadsPlaylistID = ch.ContentDetails.RelatedPlaylists.Uploads
		if ch.Snippet != nil {
			ref.Title = ch.Snippet.Title
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ref, nil
}
