package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"personas/internal/config"
	"personas/internal/dto"
	"personas/internal/infra"
	"personas/internal/repository"
	"personas/internal/service"

	"github.com/spf13/cobra"
)

// OpenFunc yields a PersonaService and a function that releases it.
type OpenFunc func(ctx context.Context) (service.PersonaService, func() error, error)

// OpenFromEnv connects with the server's configuration and makes sure the
// schema exists before any command runs.
func OpenFromEnv(_ context.Context) (service.PersonaService, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := infra.EnsureSchema(db); err != nil {
		_ = infra.Close(db)
		return nil, nil, err
	}
	svc := service.NewPersonaService(repository.NewPersonaRepository(db))
	return svc, func() error { return infra.Close(db) }, nil
}

type commandDeps struct {
	out    io.Writer
	open   OpenFunc
	output *string
}

func NewRootCommand(out io.Writer, open OpenFunc) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:           "personasctl",
		Short:         "Administración directa de personas en la base de datos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if output != "json" && output != "table" {
				return usageErrorf("--output debe ser json o table")
			}
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "Formato de salida: json | table")

	deps := commandDeps{out: out, open: open, output: &output}
	cmd.AddCommand(
		newCrearCommand(deps),
		newListarCommand(deps),
		newObtenerCommand(deps),
		newActualizarCommand(deps),
		newEliminarCommand(deps),
		newBuscarCommand(deps),
	)
	return cmd
}

// withService opens the service for the duration of fn.
func withService(ctx context.Context, deps commandDeps, fn func(context.Context, service.PersonaService) error) error {
	svc, closeFn, err := deps.open(ctx)
	if err != nil {
		return &ExitError{Code: ExitCodeGeneric, Err: fmt.Errorf("conectando a la base de datos: %w", err)}
	}
	defer func() { _ = closeFn() }()
	return mapCommandError(fn(ctx, svc))
}

func parseIDArg(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 63)
	if err != nil {
		return 0, usageErrorf("ID inválido: %q", arg)
	}
	return uint(id), nil
}

func printPersona(deps commandDeps, p dto.PersonaResponse) error {
	if *deps.output == "table" {
		return printTable(deps.out, []dto.PersonaResponse{p})
	}
	return printJSON(deps.out, p)
}

func printPersonas(deps commandDeps, personas []dto.PersonaResponse) error {
	if *deps.output == "table" {
		return printTable(deps.out, personas)
	}
	return printJSON(deps.out, personas)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(out io.Writer, personas []dto.PersonaResponse) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tAPELLIDO\tEDAD")
	for _, p := range personas {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Nombre, p.Apellido, p.Edad)
	}
	return tw.Flush()
}
