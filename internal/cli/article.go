package cli

//
// article.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-philo/internal/service"
)

func newListArticlesCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list articles",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "list also not published articles", Aliases: []string{"a"}},
		},
		Action: wrap(listArticlesCmd),
	}
}

//nolint:forbidigo
func listArticlesCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	articlesSrv := do.MustInvoke[*service.ArticlesSrv](injector)

	articles, err := articlesSrv.ListArticles(ctx, !clicmd.Bool("all"))
	if err != nil {
		return fmt.Errorf("get articles list error: %w", err)
	}

	fmt.Printf("%-6s | %-30s | %-9s | %s \n", "ID", "Name", "Published", "Content")
	fmt.Println("--------------------------------------------------------------------------------------------")

	for _, a := range articles {
		fmt.Printf("%-6d | %-30s | %-9v | %s \n", a.ID, a.Name, a.Published, a.Content)
	}

	fmt.Printf("\nTotal: %d\n", len(articles))

	return nil
}
