package cli

import (
	"context"
	"fmt"

	"personas/internal/dto"
	"personas/internal/service"

	"github.com/spf13/cobra"
)

func newCrearCommand(deps commandDeps) *cobra.Command {
	var (
		nombre   string
		apellido string
		edad     int
	)

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Crear una persona",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.CrearPersonaRequest{Nombre: nombre, Apellido: apellido}
			if cmd.Flags().Changed("edad") {
				req.Edad = &edad
			}
			if err := dto.Validate(req); err != nil {
				return validationError(err)
			}
			return withService(cmd.Context(), deps, func(ctx context.Context, svc service.PersonaService) error {
				resp, err := svc.Crear(ctx, req)
				if err != nil {
					return err
				}
				return printPersona(deps, resp)
			})
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "Nombre (1-100 caracteres)")
	cmd.Flags().StringVar(&apellido, "apellido", "", "Apellido (1-100 caracteres)")
	cmd.Flags().IntVar(&edad, "edad", 0, "Edad (0-150)")
	return cmd
}

func newListarCommand(deps commandDeps) *cobra.Command {
	var q dto.ListarQuery

	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Listar personas con paginación",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dto.Validate(q); err != nil {
				return validationError(err)
			}
			return withService(cmd.Context(), deps, func(ctx context.Context, svc service.PersonaService) error {
				list, err := svc.Listar(ctx, q)
				if err != nil {
					return err
				}
				return printPersonas(deps, list)
			})
		},
	}

	cmd.Flags().IntVar(&q.Skip, "skip", 0, "Cantidad de personas a omitir")
	cmd.Flags().IntVar(&q.Limit, "limit", dto.DefaultLimit, fmt.Sprintf("Cantidad de personas a mostrar (1-%d)", dto.MaxLimit))
	return cmd
}

func newObtenerCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "obtener ID",
		Short: "Obtener una persona por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return withService(cmd.Context(), deps, func(ctx context.Context, svc service.PersonaService) error {
				resp, err := svc.ObtenerPorID(ctx, id)
				if err != nil {
					return err
				}
				return printPersona(deps, resp)
			})
		},
	}
}

func newActualizarCommand(deps commandDeps) *cobra.Command {
	var (
		nombre   string
		apellido string
		edad     int
	)

	cmd := &cobra.Command{
		Use:   "actualizar ID",
		Short: "Actualizar los campos indicados de una persona",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			// Only flags the user actually passed become part of the patch.
			var req dto.ActualizarPersonaRequest
			if cmd.Flags().Changed("nombre") {
				req.Nombre = &nombre
			}
			if cmd.Flags().Changed("apellido") {
				req.Apellido = &apellido
			}
			if cmd.Flags().Changed("edad") {
				req.Edad = &edad
			}
			if err := dto.Validate(req); err != nil {
				return validationError(err)
			}
			return withService(cmd.Context(), deps, func(ctx context.Context, svc service.PersonaService) error {
				resp, err := svc.Actualizar(ctx, id, req)
				if err != nil {
					return err
				}
				return printPersona(deps, resp)
			})
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "Nuevo nombre")
	cmd.Flags().StringVar(&apellido, "apellido", "", "Nuevo apellido")
	cmd.Flags().IntVar(&edad, "edad", 0, "Nueva edad")
	return cmd
}

func newEliminarCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar ID",
		Short: "Eliminar una persona de forma permanente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return withService(cmd.Context(), deps, func(ctx context.Context, svc service.PersonaService) error {
				if err := svc.Eliminar(ctx, id); err != nil {
					return err
				}
				_, err := fmt.Fprintf(deps.out, "persona %d eliminada\n", id)
				return err
			})
		},
	}
}

func newBuscarCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "buscar NOMBRE",
		Short: "Buscar personas por nombre o apellido",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := dto.BuscarQuery{Nombre: args[0]}
			if err := dto.Validate(q); err != nil {
				return validationError(err)
			}
			return withService(cmd.Context(), deps, func(ctx context.Context, svc service.PersonaService) error {
				list, err := svc.Buscar(ctx, q.Nombre)
				if err != nil {
					return err
				}
				return printPersonas(deps, list)
			})
		},
	}
}
