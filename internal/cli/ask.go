package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/blockfmt/internal/agent"
	"github.com/mithrel/blockfmt/internal/editor"
	"github.com/mithrel/blockfmt/internal/util"
	"github.com/mithrel/blockfmt/internal/wire"
)

// newGenerator builds the text generator for agent commands. Tests swap it.
var newGenerator wire.GeneratorFactory = wire.NewGeminiGenerator

var editQuestion = editor.EditQuestion

func newAskCmd() *cobra.Command {
	var persona string
	var raw, edit bool
	cmd := &cobra.Command{
		Use:   "ask --agent <name> [question...]",
		Short: "Ask a mentor agent and render its reply",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			a, err := agent.Lookup(persona)
			if err != nil {
				return fmt.Errorf("%w (choose one of %s)", err, strings.Join(agent.Names(), ", "))
			}
			question := strings.Join(args, " ")
			if edit {
				if question, err = editQuestion(a.Title, question); err != nil {
					return err
				}
			}
			if strings.TrimSpace(question) == "" {
				return errors.New("question is required (pass it as arguments or use --edit)")
			}
			gen, err := newGenerator(cmd.Context(), app)
			if err != nil {
				return err
			}
			reply, err := app.AgentService(gen).Ask(cmd.Context(), string(a.Name), question)
			if err != nil {
				return err
			}
			if raw {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), reply)
				return err
			}
			return printResponse(cmd, app, a.Title, reply)
		},
	}
	cmd.Flags().StringVarP(&persona, "agent", "a", string(agent.Career), "agent persona: "+strings.Join(agent.Names(), "|"))
	cmd.Flags().String("model", "", "generative model override")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the reply text without rendering")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "compose the question in $EDITOR")
	addOutputFlags(cmd)
	registerAgentCompletion(cmd)
	return cmd
}

func registerAgentCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("agent", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return util.ScoreCompletions(toComplete, agent.Names(), 0), cobra.ShellCompDirectiveNoFileComp
	})
}
