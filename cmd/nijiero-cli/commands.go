package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/nijiero-go/internal/downloader/providers"
	"github.com/vrsandeep/nijiero-go/internal/models"
)

func newPopularCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List the ranking page",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = withProvider(func(ctx context.Context, p models.Provider, _ []string) (any, error) {
		return p.Popular(ctx, page)
	})
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newLatestCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "List latest updates, where the provider has them",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = withProvider(func(ctx context.Context, p models.Provider, _ []string) (any, error) {
		return p.Latest(ctx, page)
	})
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var (
		page  int
		query string
		tag   int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search by category or tag name",
		Long: `Search guesses which taxonomy the keyword lives under and, when that
listing is empty, retries once under the other one. A --query is looked
up as a tag first, then as a category. Without --query the --tag index
from the filters command is looked up as a category first, then as a tag.`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = withProvider(func(ctx context.Context, p models.Provider, _ []string) (any, error) {
		return p.Search(ctx, page, query, models.FilterState{TagIndex: tag})
	})
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVarP(&query, "query", "q", "", "keyword, e.g. \"Spy x Family\"")
	cmd.Flags().IntVar(&tag, "tag", 0, "index into the tag list, used when --query is empty")
	return cmd
}

func newDetailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details <identifier>",
		Short: "Show a work's details",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = withProvider(func(ctx context.Context, p models.Provider, args []string) (any, error) {
		return p.GetDetails(ctx, args[0])
	})
	return cmd
}

func newChaptersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapters <identifier>",
		Short: "List a work's chapters",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = withProvider(func(ctx context.Context, p models.Provider, args []string) (any, error) {
		return p.GetChapters(ctx, args[0])
	})
	return cmd
}

func newPagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages <chapter-identifier>",
		Short: "List the image pages of a chapter",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = withProvider(func(ctx context.Context, p models.Provider, args []string) (any, error) {
		return p.GetPages(ctx, args[0])
	})
	return cmd
}

func newFiltersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Show the search filters and their tag indices",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = withProvider(func(ctx context.Context, p models.Provider, _ []string) (any, error) {
		return p.Filters(), nil
	})
	return cmd
}

func newProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List registered providers",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = withProvider(func(context.Context, models.Provider, []string) (any, error) {
		return providers.GetAll(), nil
	})
	return cmd
}
