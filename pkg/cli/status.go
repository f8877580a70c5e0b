package cli

import (
	"context"
	"fmt"

	"github.com/mason-build/mason/pkg/cli/config"
	"github.com/mason-build/mason/pkg/infra/github"
	"github.com/mason-build/mason/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdStatus() *cli.Command {
	var githubCfg config.GitHub

	return &cli.Command{
		Name:  "status",
		Usage: "Show the latest CI workflow run of the published repository",
		Flags: githubCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := github.NewClient(githubCfg.Token)
			if err != nil {
				return err
			}

			statusUC := usecase.NewStatus(client)

			run, err := statusUC.LatestRun(ctx, githubCfg.Owner, githubCfg.Repo, githubCfg.Branch)
			if err != nil {
				return err
			}

			if run == nil {
				fmt.Printf("%s/%s: no workflow runs\n", githubCfg.Owner, githubCfg.Repo)
				return nil
			}

			state := run.Status
			if run.Finished() {
				state = run.Conclusion
			}
			fmt.Printf("%s/%s: %s (%s on %s)\n  %s\n",
				githubCfg.Owner, githubCfg.Repo, state, run.Name, run.HeadBranch, run.HTMLURL)
			return nil
		},
	}
}
