package slack

import (
	"fmt"

	"github.com/slack-go/slack"

	"incstats/internal/services/intake/domain"
)

// promptBlock builds the category dropdown for a fresh report. The select is
// external so typing in it triggers block_suggestion refreshes
func promptBlock(p *domain.Prompt) slack.Block {
	sel := slack.NewOptionsSelectBlockElement(
		slack.OptTypeExternal,
		slack.NewTextBlockObject(slack.PlainTextType, "Select a category", false, false),
		p.ActionID,
	)
	// seed options let the dropdown open instantly; suggestions replace them
	sel.MinQueryLength = new(int)

	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, "Which category does this incident belong to?", false, false),
		nil,
		slack.NewAccessory(sel),
	)
}

// optionsResponse shapes category names into a block_suggestion ack payload
func optionsResponse(names []string) slack.OptionsResponse {
	opts := make([]*slack.OptionBlockObject, 0, len(names))
	for _, n := range names {
		opts = append(opts, slack.NewOptionBlockObject(
			n,
			slack.NewTextBlockObject(slack.PlainTextType, n, false, false),
			nil,
		))
	}
	return slack.OptionsResponse{Options: opts}
}

// textResponse is an ephemeral plain-text slash command ack
func textResponse(text string) map[string]any {
	return map[string]any{
		"response_type": "ephemeral",
		"text":          text,
	}
}

// statsModal renders the reporting overview: total plus both charts
func statsModal(total int64, weeklyURL, categoryURL string) slack.ModalViewRequest {
	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*%d incidents* in the selected window", total), false, false),
			nil, nil,
		),
		slack.NewImageBlock(weeklyURL, "incidents by week", "",
			slack.NewTextBlockObject(slack.PlainTextType, "By week", false, false)),
		slack.NewImageBlock(categoryURL, "incidents by category", "",
			slack.NewTextBlockObject(slack.PlainTextType, "By category", false, false)),
	}

	return slack.ModalViewRequest{
		Type:   slack.ViewType("modal"),
		Title:  slack.NewTextBlockObject(slack.PlainTextType, "Incident stats", false, false),
		Close:  slack.NewTextBlockObject(slack.PlainTextType, "Close", false, false),
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}
