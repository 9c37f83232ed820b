package builders_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/builders"
	"github.com/reoring/lensmeta/metadata"
)

func issuesOf(t *testing.T, err error) lensmeta.Issues {
	t.Helper()
	var ve *lensmeta.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(ve.Error(), "fix the following issues") {
		t.Fatalf("unexpected message: %s", ve.Error())
	}
	return ve.Issues
}

func TestTextOnly_Defaults(t *testing.T) {
	m, err := builders.TextOnly(context.Background(), builders.TextOnlyOptions{
		Common:  builders.Common{Tags: []string{"GM", "gm"}},
		Content: "GM!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Schema != metadata.TextOnlySchema || m.Lens.MainContentFocus != metadata.FocusTextOnly {
		t.Fatalf("unexpected document: %+v", m)
	}
	if _, err := uuid.Parse(string(m.Lens.ID)); err != nil {
		t.Fatalf("default id is not a uuid: %q", m.Lens.ID)
	}
	if m.Lens.Locale != builders.DefaultLocale || len(m.Lens.Tags) != 1 || m.Lens.Tags[0] != "gm" {
		t.Fatalf("unexpected common fields: %+v", m.Lens.PostCommon)
	}
}

func TestTextOnly_ValidationError(t *testing.T) {
	_, err := builders.TextOnly(context.Background(), builders.TextOnlyOptions{
		Common: builders.Common{ID: "1", ContentWarning: "GORE"},
	})
	iss := issuesOf(t, err)
	if len(iss) != 2 || iss[0].Path.String() != "lens.contentWarning" || iss[1].Path.String() != "lens.content" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if _, ok := lensmeta.AsIssues(err); !ok {
		t.Fatal("ValidationError should unwrap to Issues")
	}
}

func TestMediaBuilders(t *testing.T) {
	ctx := context.Background()
	audio, err := builders.Audio(ctx, builders.AudioOptions{
		MediaOptions: builders.MediaOptions{Title: "Track"},
		Audio:        builders.Media{Item: "ipfs://QmAudio", Type: "audio/mpeg", Duration: 120, Artist: "Anon"},
	})
	if err != nil {
		t.Fatalf("audio: %v", err)
	}
	if audio.Lens.Audio.Duration == nil || *audio.Lens.Audio.Duration != 120 || audio.Lens.Audio.Family() != metadata.AudioFamily {
		t.Fatalf("unexpected audio: %+v", audio.Lens.Audio)
	}

	video, err := builders.Video(ctx, builders.VideoOptions{
		Video: builders.Media{Item: "ipfs://QmVideo", Type: "video/mp4"},
		Short: true,
	})
	if err != nil || video.Lens.MainContentFocus != metadata.FocusShortVideo {
		t.Fatalf("video: %+v %v", video.Lens, err)
	}

	_, err = builders.Image(ctx, builders.ImageOptions{
		Image: builders.Media{Item: "ipfs://QmImage", Type: "audio/mpeg"},
	})
	if iss := issuesOf(t, err); len(iss) != 1 || iss[0].Path.String() != "lens.image.type" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestArticleAndLink(t *testing.T) {
	ctx := context.Background()
	a, err := builders.Article(ctx, builders.ArticleOptions{
		Content:     "# Title\n\nbody",
		Attachments: []builders.Media{{Item: "ipfs://QmImage", Type: "image/png"}},
	})
	if err != nil || len(a.Lens.Attachments) != 1 {
		t.Fatalf("article: %+v %v", a.Lens, err)
	}
	_, err = builders.Link(ctx, builders.LinkOptions{SharingLink: "nope"})
	if iss := issuesOf(t, err); len(iss) != 1 || iss[0].Path.String() != "lens.sharingLink" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestMarketplaceRecovers(t *testing.T) {
	m, err := builders.TextOnly(context.Background(), builders.TextOnlyOptions{
		Common: builders.Common{Marketplace: &builders.Marketplace{
			Name:  "Collectible",
			Image: "not a url",
		}},
		Content: "gm",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name == nil || *m.Name != "Collectible" || m.Image != nil {
		t.Fatalf("unexpected marketplace: %+v", m.Marketplace)
	}
}

func TestEvent(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	e, err := builders.Event(ctx, builders.EventOptions{
		Location: "Berlin",
		Position: &builders.GeoPoint{Lat: 52.52, Lng: 13.405},
		StartsAt: start,
		EndsAt:   start.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Lens.StartsAt != "2024-05-01T18:00:00Z" || e.Lens.EndsAt != "2024-05-01T20:00:00Z" {
		t.Fatalf("unexpected times: %s %s", e.Lens.StartsAt, e.Lens.EndsAt)
	}

	_, err = builders.Event(ctx, builders.EventOptions{Location: "Berlin"})
	iss := issuesOf(t, err)
	if len(iss) != 2 || iss[0].Path.String() != "lens.startsAt" || iss[1].Path.String() != "lens.endsAt" {
		t.Fatalf("unexpected issues: %v", iss)
	}

	_, err = builders.Event(ctx, builders.EventOptions{Location: "Berlin", StartsAt: start, EndsAt: start})
	iss = issuesOf(t, err)
	if len(iss) != 1 || iss[0].Path.String() != "lens.endsAt" || iss[0].Code != lensmeta.CodeCrossField {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	p, err := builders.Profile(ctx, builders.ProfileOptions{
		Name:       "Alice",
		Attributes: []builders.Attribute{{Type: metadata.StringAttribute, Key: "twitter", Value: "@alice"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Schema != metadata.ProfileSchema || p.Lens.Name != "Alice" || len(p.Lens.Attributes) != 1 {
		t.Fatalf("unexpected profile: %+v", p)
	}

	_, err = builders.Profile(ctx, builders.ProfileOptions{AppID: "0x12"})
	iss := issuesOf(t, err)
	if len(iss) != 2 {
		t.Fatalf("expected length and format issues, got %v", iss)
	}
	for _, it := range iss {
		if it.Path.String() != "lens.appId" {
			t.Fatalf("unexpected path: %v", it)
		}
	}
}
