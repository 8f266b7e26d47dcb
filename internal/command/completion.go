// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/meta"
)

const bashCompletionScript = `# bash completion for awsctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_awsctl()
{
    local cur prev group sub
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "fh lex ssm completion --help --version" -- "$cur") )
        return 0
    fi

    group=${COMP_WORDS[1]}
    if [[ ${COMP_CWORD} -eq 2 ]]; then
        case "$group" in
            fh)  COMPREPLY=( $(compgen -W "ls describe put peek" -- "$cur") ) ;;
            lex) COMPREPLY=( $(compgen -W "bots intents slottypes aliases versions builtins diff" -- "$cur") ) ;;
            ssm) COMPREPLY=( $(compgen -W "params get put rm commands docs automations" -- "$cur") ) ;;
            completion) COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") ) ;;
        esac
        return 0
    fi

    sub=${COMP_WORDS[2]}
    local common="--attrs -a --color -c --filter -f --local -l --output -o --sort -s --titles -t --tldr --schema --profile --region --endpoint"
    local opts="$common"

    case "$group/$sub" in
        fh/ls|lex/bots|lex/intents|lex/slottypes|lex/aliases|lex/versions|ssm/docs|ssm/automations)
            opts="$common --limit" ;;
        fh/put)         opts="$common --no-newline" ;;
        fh/peek)        opts="$common --limit" ;;
        lex/builtins)   opts="$common --limit --locale --slots" ;;
        lex/diff)       opts="$common --strict" ;;
        ssm/params)     opts="$common --limit --decrypt -d --shallow --chop" ;;
        ssm/get)        opts="$common --decrypt -d --value" ;;
        ssm/put)        opts="$common --type --secure --overwrite --description --key-id --tier" ;;
        ssm/commands)   opts="$common --limit --instance" ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --type)
            COMPREPLY=( $(compgen -W "String StringList SecureString" -- "$cur") )
            return 0
            ;;
        --tier)
            COMPREPLY=( $(compgen -W "Standard Advanced Intelligent-Tiering" -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _awsctl awsctl
`

const zshCompletionScript = `#compdef awsctl

_awsctl() {
  local -a groups
  groups=(
    'fh:Kinesis Firehose delivery streams'
    'lex:Lex model building'
    'ssm:Systems Manager'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-l --local)'{-l,--local}'[show local timestamps]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  '--schema[dump schema]'
  '--profile[shared config profile]:profile'
  '--region[AWS region]:region'
  '--endpoint[base endpoint URL]:url'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'awsctl commands' groups
    return
  fi

  if (( CURRENT == 3 )); then
    case $words[2] in
      fh)  _values 'fh command' ls describe put peek ;;
      lex) _values 'lex command' bots intents slottypes aliases versions builtins diff ;;
      ssm) _values 'ssm command' params get put rm commands docs automations ;;
      completion) _values 'shell' bash zsh ;;
    esac
    return
  fi

  case "$words[2]/$words[3]" in
    fh/put)
      _arguments -C $common '--no-newline[do not append newlines]' '*:record'
      ;;
    lex/builtins)
      _arguments -C $common '--limit[limit results]:limit' '--locale[locale]:locale' '--slots[builtin slot types]'
      ;;
    lex/diff)
      _arguments -C $common '--strict[compare every key]' '*:version'
      ;;
    ssm/params|ssm/get)
      _arguments -C $common '--limit[limit results]:limit' '(-d --decrypt)'{-d,--decrypt}'[decrypt values]' \
        '--shallow[do not recurse]' '--chop[chop common path prefix]' '--value[print only the value]' '*:name'
      ;;
    ssm/put)
      _arguments -C $common '--type[parameter type]:type:(String StringList SecureString)' \
        '--secure[SecureString with prompt]' '--overwrite[replace existing value]' \
        '--description[description]:text' '--key-id[KMS key]:key' \
        '--tier[tier]:tier:(Standard Advanced Intelligent-Tiering)' '*:name'
      ;;
    ssm/commands)
      _arguments -C $common '--limit[limit results]:limit' '--instance[instance id]:instance'
      ;;
    *)
      _arguments -C $common '--limit[limit results]:limit' '*:name'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _awsctl awsctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	w := Stdout(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: awsctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "awsctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
