// Package slack adapts the intake workflow to Slack's socket-mode transport.
// All Slack types stay inside this package; the workflow only sees its own
// domain types
package slack

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"incstats/internal/platform/config"
	perr "incstats/internal/platform/errors"
	"incstats/internal/platform/logger"
	"incstats/internal/services/intake/domain"
)

// Slash commands the bot answers
const (
	cmdAddCategory = "/addcategory"
	cmdStats       = "/inc_stats"
)

// Options configures the adapter
type Options struct {
	AppToken string // xapp- token for socket mode
	BotToken string // xoxb- token for the Web API
	Debug    bool
}

// FromConfig reads adapter options from the CORE_BOT_ namespace
func FromConfig(cfg config.Conf) Options {
	bf := cfg.Prefix("CORE_BOT_")
	return Options{
		AppToken: bf.MustString("SLACK_APP_TOKEN"),
		BotToken: bf.MustString("SLACK_BOT_TOKEN"),
		Debug:    bf.MayBool("SLACK_DEBUG", false),
	}
}

// sockAcker is the slice of socketmode.Client the handlers ack through
type sockAcker interface {
	Ack(req socketmode.Request, payload ...any)
}

// webAPI is the slice of slack.Client the handlers post through
type webAPI interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
	OpenView(triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
}

// Adapter runs the socket-mode event loop and drives the workflow port
type Adapter struct {
	api      webAPI
	sock     sockAcker
	client   *socketmode.Client
	workflow domain.WorkflowPort
	log      *logger.Logger
}

// New constructs an Adapter. The socket connection opens on Run
func New(opt Options, workflow domain.WorkflowPort) *Adapter {
	api := slack.New(
		opt.BotToken,
		slack.OptionAppLevelToken(opt.AppToken),
		slack.OptionDebug(opt.Debug),
	)
	client := socketmode.New(api)
	return &Adapter{
		api:      api,
		sock:     client,
		client:   client,
		workflow: workflow,
		log:      logger.Named("slack"),
	}
}

// Run processes socket-mode events until ctx is done. Each event handles
// independently; a failing handler logs and never stalls the loop
func (a *Adapter) Run(ctx context.Context) error {
	go a.loop(ctx, a.client.Events)
	return a.client.RunContext(ctx)
}

// loop fans events out one goroutine each; handlers share no mutable state,
// so a slow store round trip never holds up the next event's ack
func (a *Adapter) loop(ctx context.Context, events <-chan socketmode.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			go a.dispatch(ctx, evt)
		}
	}
}

func (a *Adapter) dispatch(ctx context.Context, evt socketmode.Event) {
	// one id per inbound event so concurrent handler logs correlate
	log := a.log.With().Str("event_id", uuid.NewString()).Str("event_type", string(evt.Type)).Logger()

	switch evt.Type {
	case socketmode.EventTypeEventsAPI:
		apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			return
		}
		a.sock.Ack(*evt.Request)
		a.handleEventsAPI(ctx, &log, apiEvent)

	case socketmode.EventTypeInteractive:
		callback, ok := evt.Data.(slack.InteractionCallback)
		if !ok {
			return
		}
		a.handleInteractive(ctx, &log, evt, callback)

	case socketmode.EventTypeSlashCommand:
		cmd, ok := evt.Data.(slack.SlashCommand)
		if !ok {
			return
		}
		a.handleSlash(ctx, &log, evt, cmd)

	case socketmode.EventTypeConnectionError:
		log.Warn().Msg("socket connection error, client will retry")
	}
}

func (a *Adapter) handleEventsAPI(ctx context.Context, log *logger.Logger, evt slackevents.EventsAPIEvent) {
	msg, ok := evt.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		return
	}
	// ignore our own and other bots' messages, plus edits/deletes
	if msg.BotID != "" || msg.SubType != "" {
		return
	}

	prompt, err := a.workflow.HandleMessage(ctx, domain.Message{
		Reporter:    msg.User,
		Text:        msg.Text,
		ThreadReply: msg.ThreadTimeStamp != "",
	})
	if err != nil {
		log.Error().Err(err).Msg("message intake failed")
		return
	}
	if prompt == nil {
		return
	}

	if _, _, err := a.api.PostMessage(msg.Channel, slack.MsgOptionBlocks(promptBlock(prompt))); err != nil {
		log.Error().Err(err).Msg("post category prompt failed")
	}
}

func (a *Adapter) handleInteractive(
	ctx context.Context,
	log *logger.Logger,
	evt socketmode.Event,
	callback slack.InteractionCallback,
) {
	switch callback.Type {
	case slack.InteractionTypeBlockSuggestion:
		names, err := a.workflow.HandleOptions(ctx, callback.ActionID, callback.Value)
		if err != nil {
			log.Warn().Err(err).Msg("option refresh failed")
		}
		a.sock.Ack(*evt.Request, optionsResponse(names))

	case slack.InteractionTypeBlockActions:
		// ack first: the write must never delay the interaction
		a.sock.Ack(*evt.Request)

		// reports carry the display name; ids are for users Slack never named
		reporter := callback.User.Name
		if reporter == "" {
			reporter = callback.User.ID
		}

		for _, action := range callback.ActionCallback.BlockActions {
			err := a.workflow.HandleSelection(ctx, domain.Selection{
				ActionID: action.ActionID,
				Reporter: reporter,
				Choice:   action.SelectedOption.Value,
			})
			if err != nil {
				log.Error().Err(err).Str("action_id", action.ActionID).Msg("selection failed")
			}
		}

	default:
		a.sock.Ack(*evt.Request)
	}
}

func (a *Adapter) handleSlash(
	ctx context.Context,
	log *logger.Logger,
	evt socketmode.Event,
	cmd slack.SlashCommand,
) {
	switch cmd.Command {
	case cmdAddCategory:
		res, err := a.workflow.AddCategory(ctx, cmd.Text)
		if err != nil {
			// rejected input gets a specific reply; only store failures stay generic
			if perr.IsCode(err, perr.ErrorCodeValidation) {
				a.sock.Ack(*evt.Request, textResponse("Please provide a category name."))
				return
			}
			log.Error().Err(err).Msg("add category failed")
			a.sock.Ack(*evt.Request, textResponse("Could not add that category."))
			return
		}
		if res.Created {
			a.sock.Ack(*evt.Request, textResponse(fmt.Sprintf("Category %q added.", res.Name)))
		} else {
			a.sock.Ack(*evt.Request, textResponse(fmt.Sprintf("Category %q already exists.", res.Name)))
		}

	case cmdStats:
		a.sock.Ack(*evt.Request)

		overview, err := a.workflow.Stats(ctx, cmd.Text)
		if err != nil {
			log.Error().Err(err).Msg("stats failed")
			return
		}
		if _, err := a.api.OpenView(cmd.TriggerID, statsModal(overview.Total, overview.WeeklyChartURL, overview.CategoryChartURL)); err != nil {
			log.Error().Err(err).Msg("open stats modal failed")
		}

	default:
		a.sock.Ack(*evt.Request)
	}
}
