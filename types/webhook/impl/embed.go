package webhooks

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/sharptimer/timerhook/types/fields"
)

// Document holds everything that goes into a notification embed.
// Empty Image and Thumbnail are left out, as is a Color of 0.
type Document struct {
	Title  string
	Fields []fields.Field

	AuthorName string
	AuthorUrl  string

	FooterText string
	FooterIcon string

	Image     string
	Thumbnail string
	Color     int
}

func BuildEmbed(doc Document) discord.Embed {
	builder := discord.NewEmbedBuilder().
		SetTitle(doc.Title).
		SetAuthorName(doc.AuthorName).
		SetAuthorURL(doc.AuthorUrl).
		SetFooterText(doc.FooterText).
		SetFooterIcon(doc.FooterIcon)

	for _, field := range doc.Fields {
		builder.AddField(field.Name, field.Value, field.Inline)
	}

	if len(doc.Image) != 0 {
		builder.SetImage(doc.Image)
	}
	if len(doc.Thumbnail) != 0 {
		builder.SetThumbnail(doc.Thumbnail)
	}
	if doc.Color != 0 {
		builder.SetColor(doc.Color)
	}

	return builder.Build()
}
