package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hugohenrick/chat-offline/internal/domain/chat"
	"github.com/hugohenrick/chat-offline/internal/infrastructure/database"
)

// Repository é o repositório usado pelos comandos
type Repository interface {
	chat.Repository
	Reset(ctx context.Context) (chat.Chats, error)
}

// RepositoryFactory abre o repositório configurado. O retorno close libera o armazenamento.
type RepositoryFactory func(ctx context.Context) (repo Repository, close func() error, err error)

// NewRootCmd cria o comando raiz do mockctl
func NewRootCmd(open RepositoryFactory, databaseURL func() string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mockctl",
		Short:         "Manutenção do armazenamento da API simulada",
		Version:       "1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newListCmd(open))
	rootCmd.AddCommand(newExportCmd(open))
	rootCmd.AddCommand(newImportCmd(open))
	rootCmd.AddCommand(newResetCmd(open))
	rootCmd.AddCommand(newMigrateCmd(databaseURL))
	return rootCmd
}

// withRepository abre o repositório, executa fn e fecha o armazenamento
func withRepository(cmd *cobra.Command, open RepositoryFactory, fn func(ctx context.Context, repo Repository) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	repo, closeFn, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(ctx, repo)
}

func newListCmd(open RepositoryFactory) *cobra.Command {
	var opts struct {
		Tag    string
		Pinned bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista os chats armazenados",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, open, func(ctx context.Context, repo Repository) error {
				chats, err := repo.Load(ctx)
				if err != nil {
					return err
				}
				if opts.Pinned {
					chats = chats.Pinned()
				}
				if opts.Tag != "" {
					chats = chats.WithTag(opts.Tag)
				}

				out := cmd.OutOrStdout()
				Title(out, "CHATS (%d)", len(chats))
				for _, c := range chats {
					idColor.Fprint(out, c.ID+"  ")
					fmt.Fprint(out, c.Title)
					if c.Pinned {
						pinnedColor.Fprint(out, "  [fixado]")
					}
					if len(c.Tags) > 0 {
						tagColor.Fprint(out, "  #"+strings.Join(c.Tags, " #"))
					}
					fmt.Fprintln(out)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Filtrar por tag")
	cmd.Flags().BoolVarP(&opts.Pinned, "pinned", "p", false, "Somente chats fixados")
	return cmd
}

func newExportCmd(open RepositoryFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "export [arquivo]",
		Short: "Exporta a coleção em JSON (stdout quando sem arquivo)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, open, func(ctx context.Context, repo Repository) error {
				chats, err := repo.Load(ctx)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(chats, "", "  ")
				if err != nil {
					return fmt.Errorf("erro ao serializar chats: %w", err)
				}
				if len(args) == 0 {
					_, err = cmd.OutOrStdout().Write(append(data, '\n'))
					return err
				}
				if err := os.WriteFile(args[0], data, 0o644); err != nil {
					return fmt.Errorf("erro ao gravar %s: %w", args[0], err)
				}
				Success(cmd.OutOrStdout(), "%d chats exportados para %s", len(chats), args[0])
				return nil
			})
		},
	}
}

func newImportCmd(open RepositoryFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "import <arquivo|->",
		Short: "Substitui a coleção pelo conteúdo JSON do arquivo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("erro ao ler coleção: %w", err)
			}

			var chats chat.Chats
			if err := json.Unmarshal(data, &chats); err != nil {
				return fmt.Errorf("coleção inválida: %w", err)
			}
			if err := chats.Validate(); err != nil {
				return err
			}

			return withRepository(cmd, open, func(ctx context.Context, repo Repository) error {
				if err := repo.Save(ctx, chats); err != nil {
					return err
				}
				Success(cmd.OutOrStdout(), "%d chats importados", len(chats))
				return nil
			})
		},
	}
}

func newResetCmd(open RepositoryFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Descarta a coleção e grava apenas o chat de demonstração",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, open, func(ctx context.Context, repo Repository) error {
				chats, err := repo.Reset(ctx)
				if err != nil {
					return err
				}
				Success(cmd.OutOrStdout(), "Coleção reiniciada (%s)", chats[0].ID)
				return nil
			})
		},
	}
}

func newMigrateCmd(databaseURL func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrações do driver postgres",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica as migrações pendentes",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.RunMigrations(databaseURL()); err != nil {
				return err
			}
			Success(cmd.OutOrStdout(), "Migrações aplicadas")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Desfaz todas as migrações",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.RollbackMigrations(databaseURL()); err != nil {
				return err
			}
			Success(cmd.OutOrStdout(), "Migrações desfeitas")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Mostra a versão atual do schema",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, dirty, err := database.MigrationVersion(databaseURL())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "versão %d (dirty=%t)\n", version, dirty)
			return nil
		},
	})
	return cmd
}
