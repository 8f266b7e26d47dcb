// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cacheutil"
	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/differ"
	"github.com/tfctl/awsctl/internal/filters"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/service/lexmodels"
)

var (
	lexBotsDefaultAttrs     = []string{"name", "status", "version", "lastUpdatedDate:updated:T"}
	lexMetaDefaultAttrs     = []string{"name", "version", "lastUpdatedDate:updated:T"}
	lexAliasesDefaultAttrs  = []string{"name", "botVersion", "lastUpdatedDate:updated:T"}
	lexBuiltinsDefaultAttrs = []string{"signature", "supportedLocales:locales"}
)

// builtinsTTL is how long builtin listings are served from the cache unless
// lex.builtins.ttl says otherwise.
const builtinsTTL = 24 * time.Hour

func newLexClient(ctx context.Context, cmd *cli.Command) (*lexmodels.Client, error) {
	cfg, err := LoadAWSConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return lexmodels.NewFromConfig(cfg), nil
}

func lexBotsCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]lexmodels.BotMetadata, error) {
		client, err := newLexClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return PaginateTokens(ctx, cmd, &lexmodels.GetBotsInput{}, "NextToken",
			func(ctx context.Context, in *lexmodels.GetBotsInput) ([]lexmodels.BotMetadata, *string, error) {
				out, err := client.GetBots(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "list bots")
				}
				return out.Bots, out.NextToken, nil
			},
			NameContainsAugmenter[lexmodels.GetBotsInput],
		)
	}

	return NewQueryActionRunner(
		"lex bots",
		reflect.TypeOf((*lexmodels.BotMetadata)(nil)).Elem(),
		lexBotsDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

func lexIntentsCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]lexmodels.IntentMetadata, error) {
		client, err := newLexClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return PaginateTokens(ctx, cmd, &lexmodels.GetIntentsInput{}, "NextToken",
			func(ctx context.Context, in *lexmodels.GetIntentsInput) ([]lexmodels.IntentMetadata, *string, error) {
				out, err := client.GetIntents(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "list intents")
				}
				return out.Intents, out.NextToken, nil
			},
			NameContainsAugmenter[lexmodels.GetIntentsInput],
		)
	}

	return NewQueryActionRunner(
		"lex intents",
		reflect.TypeOf((*lexmodels.IntentMetadata)(nil)).Elem(),
		lexMetaDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

func lexSlotTypesCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]lexmodels.SlotTypeMetadata, error) {
		client, err := newLexClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return PaginateTokens(ctx, cmd, &lexmodels.GetSlotTypesInput{}, "NextToken",
			func(ctx context.Context, in *lexmodels.GetSlotTypesInput) ([]lexmodels.SlotTypeMetadata, *string, error) {
				out, err := client.GetSlotTypes(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "list slot types")
				}
				return out.SlotTypes, out.NextToken, nil
			},
			NameContainsAugmenter[lexmodels.GetSlotTypesInput],
		)
	}

	return NewQueryActionRunner(
		"lex slottypes",
		reflect.TypeOf((*lexmodels.SlotTypeMetadata)(nil)).Elem(),
		lexMetaDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

func lexAliasesCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]lexmodels.BotAliasMetadata, error) {
		if cmd.Args().Len() < 1 {
			return nil, fmt.Errorf("missing bot name")
		}
		bot := cmd.Args().First()

		client, err := newLexClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return PaginateTokens(ctx, cmd, &lexmodels.GetBotAliasesInput{BotName: awsv2.String(bot)}, "NextToken",
			func(ctx context.Context, in *lexmodels.GetBotAliasesInput) ([]lexmodels.BotAliasMetadata, *string, error) {
				out, err := client.GetBotAliases(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "list aliases of "+bot)
				}
				return out.BotAliases, out.NextToken, nil
			},
			NameContainsAugmenter[lexmodels.GetBotAliasesInput],
		)
	}

	return NewQueryActionRunner(
		"lex aliases",
		reflect.TypeOf((*lexmodels.BotAliasMetadata)(nil)).Elem(),
		lexAliasesDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

func lexVersionsCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]lexmodels.BotMetadata, error) {
		if cmd.Args().Len() < 1 {
			return nil, fmt.Errorf("missing bot name")
		}
		client, err := newLexClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return botVersions(ctx, cmd, client, cmd.Args().First())
	}

	return NewQueryActionRunner(
		"lex versions",
		reflect.TypeOf((*lexmodels.BotMetadata)(nil)).Elem(),
		lexBotsDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

func botVersions(ctx context.Context, cmd *cli.Command, client *lexmodels.Client, bot string) ([]lexmodels.BotMetadata, error) {
	return PaginateTokens(ctx, cmd, &lexmodels.GetBotVersionsInput{Name: awsv2.String(bot)}, "NextToken",
		func(ctx context.Context, in *lexmodels.GetBotVersionsInput) ([]lexmodels.BotMetadata, *string, error) {
			out, err := client.GetBotVersions(ctx, in)
			if err != nil {
				return nil, nil, Friendly(err, "list versions of "+bot)
			}
			return out.Bots, out.NextToken, nil
		},
		nil,
	)
}

// lexBuiltinsCommandAction lists builtin intents or, with --slots, builtin
// slot types. Listings rarely change and are cached per region and locale.
func lexBuiltinsCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]builtin, error) {
		locale, err := lexmodels.ParseLocale(cmd.String("locale"))
		if err != nil {
			return nil, err
		}
		var signature string
		for _, f := range filters.ServerSide(cmd.String("filter")) {
			if f.Key == "signature" {
				signature = f.Value
			}
		}

		cfg, err := LoadAWSConfig(ctx, cmd)
		if err != nil {
			return nil, err
		}
		client := lexmodels.NewFromConfig(cfg)

		kind := "intents"
		if cmd.Bool("slots") {
			kind = "slottypes"
		}
		ttl, _ := config.GetDuration("lex.builtins.ttl", builtinsTTL)
		key := fmt.Sprintf("%s/%s/%s/%s/%d", cfg.Region, kind, locale, signature, cmd.Int("limit"))

		return cacheutil.Fetch([]string{"lex", "builtins"}, key, ttl, func() ([]builtin, error) {
			if kind == "slottypes" {
				return builtinSlotTypes(ctx, cmd, client, locale, signature)
			}
			return builtinIntents(ctx, cmd, client, locale, signature)
		})
	}

	return NewQueryActionRunner(
		"lex builtins",
		reflect.TypeOf(builtin{}),
		lexBuiltinsDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// builtin is the common row shape of builtin intents and slot types.
type builtin struct {
	Signature        string   `json:"signature"`
	SupportedLocales []string `json:"supportedLocales"`
}

func builtinIntents(ctx context.Context, cmd *cli.Command, client *lexmodels.Client, locale lexmodels.Locale, signature string) ([]builtin, error) {
	in := &lexmodels.GetBuiltinIntentsInput{Locale: locale}
	if signature != "" {
		in.SignatureContains = awsv2.String(signature)
	}
	items, err := PaginateTokens(ctx, cmd, in, "NextToken",
		func(ctx context.Context, in *lexmodels.GetBuiltinIntentsInput) ([]lexmodels.BuiltinIntentMetadata, *string, error) {
			out, err := client.GetBuiltinIntents(ctx, in)
			if err != nil {
				return nil, nil, Friendly(err, "list builtin intents")
			}
			return out.Intents, out.NextToken, nil
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	rows := make([]builtin, 0, len(items))
	for _, i := range items {
		rows = append(rows, builtin{Signature: awsv2.ToString(i.Signature), SupportedLocales: localeStrings(i.SupportedLocales)})
	}
	return rows, nil
}

func builtinSlotTypes(ctx context.Context, cmd *cli.Command, client *lexmodels.Client, locale lexmodels.Locale, signature string) ([]builtin, error) {
	in := &lexmodels.GetBuiltinSlotTypesInput{Locale: locale}
	if signature != "" {
		in.SignatureContains = awsv2.String(signature)
	}
	items, err := PaginateTokens(ctx, cmd, in, "NextToken",
		func(ctx context.Context, in *lexmodels.GetBuiltinSlotTypesInput) ([]lexmodels.BuiltinSlotTypeMetadata, *string, error) {
			out, err := client.GetBuiltinSlotTypes(ctx, in)
			if err != nil {
				return nil, nil, Friendly(err, "list builtin slot types")
			}
			return out.SlotTypes, out.NextToken, nil
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	rows := make([]builtin, 0, len(items))
	for _, i := range items {
		rows = append(rows, builtin{Signature: awsv2.ToString(i.Signature), SupportedLocales: localeStrings(i.SupportedLocales)})
	}
	return rows, nil
}

func localeStrings(locales []lexmodels.Locale) []string {
	out := make([]string, 0, len(locales))
	for _, l := range locales {
		out = append(out, string(l))
	}
	return out
}

// lexDiffCommandAction compares two versions of a bot. Without explicit
// versions the user picks them from the bot's version list.
func lexDiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("missing bot name")
	}
	bot := cmd.Args().First()

	versions, err := differ.ParseVersionArgs(cmd.Args().Tail())
	if err != nil {
		return err
	}

	client, err := newLexClient(ctx, cmd)
	if err != nil {
		return err
	}

	if versions == nil {
		metas, err := botVersions(ctx, cmd, client, bot)
		if err != nil {
			return err
		}
		if len(metas) < 2 {
			return fmt.Errorf("bot %s has fewer than two versions", bot)
		}

		items := make([]differ.Version, 0, len(metas))
		for _, m := range metas {
			v := differ.Version{
				Version:     awsv2.ToString(m.Version),
				Status:      string(m.Status),
				Description: awsv2.ToString(m.Description),
			}
			if m.LastUpdatedDate != nil {
				v.Updated = m.LastUpdatedDate.Time
			}
			items = append(items, v)
		}

		selected, err := differ.SelectVersions(bot, items)
		if err != nil {
			return err
		}
		if len(selected) != 2 {
			return nil
		}
		versions = []string{selected[0].Version, selected[1].Version}
	}

	docs := make([][]byte, 0, 2)
	for _, v := range versions {
		out, err := client.GetBot(ctx, &lexmodels.GetBotInput{Name: awsv2.String(bot), VersionOrAlias: awsv2.String(v)})
		if err != nil {
			return Friendly(err, fmt.Sprintf("get bot %s:%s", bot, v))
		}
		doc, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshal bot %s:%s: %w", bot, v, err)
		}
		docs = append(docs, doc)
	}

	ignore := differ.VolatileKeys
	if cmd.Bool("strict") {
		ignore = nil
	}
	_, err = differ.Diff(Stdout(cmd), docs[0], docs[1], ignore, cmd.Bool("color"))
	return err
}

func lexCommandBuilder(meta meta.Meta) *cli.Command {
	build := func(name, usage, usageText string, action cli.ActionFunc, flags ...cli.Flag) *cli.Command {
		return (&QueryCommandBuilder{
			Name:      name,
			Namespace: "lex",
			Usage:     usage,
			UsageText: usageText,
			Flags:     flags,
			Action:    action,
			Meta:      meta,
		}).Build()
	}

	return &cli.Command{
		Name:  "lex",
		Usage: "Lex model building",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			build("bots", "list bots", "awsctl lex bots [options]", lexBotsCommandAction, NewLimitFlag()),
			build("intents", "list intents", "awsctl lex intents [options]", lexIntentsCommandAction, NewLimitFlag()),
			build("slottypes", "list slot types", "awsctl lex slottypes [options]", lexSlotTypesCommandAction, NewLimitFlag()),
			build("aliases", "list the aliases of a bot", "awsctl lex aliases [options] BOT", lexAliasesCommandAction, NewLimitFlag()),
			build("versions", "list the versions of a bot", "awsctl lex versions [options] BOT", lexVersionsCommandAction, NewLimitFlag()),
			build("builtins", "list builtin intents or slot types", "awsctl lex builtins [options]", lexBuiltinsCommandAction,
				NewLimitFlag(),
				&cli.StringFlag{
					Name:  "locale",
					Usage: "locale of the builtins",
					Value: string(lexmodels.LocaleEnUs),
				},
				&cli.BoolFlag{
					Name:  "slots",
					Usage: "list builtin slot types instead of intents",
				},
			),
			build("diff", "compare two versions of a bot", "awsctl lex diff [options] BOT [V1 V2]", lexDiffCommandAction,
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "also compare version, checksum and dates",
				},
			),
		},
	}
}
