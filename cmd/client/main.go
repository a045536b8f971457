// cmd/client — interactive CLI mirroring the mobile app's logic layer:
// persisted session, gated navigation, and a locally filterable pedido list.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/client/api"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/client/pedidos"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/client/session"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/term"

	_ "modernc.org/sqlite"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.WarnLevel)

	viper.AutomaticEnv()
	viper.SetDefault("API_URL", "http://localhost:3000")

	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot resolve home directory")
	}
	dir := filepath.Join(home, ".seguimiento-pedidos")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Fatal().Err(err).Msg("cannot create state directory")
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "sesion.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open session database")
	}
	defer db.Close()

	store, err := session.NewSQLiteStore(db)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot initialize session store")
	}

	ctx := context.Background()
	mgr := session.NewManager(store)

	// Session restore happens before anything renders; the spinner state is
	// what a real screen would show meanwhile.
	fmt.Println("Cargando sesión…")
	mgr.Iniciar(ctx)

	cli := api.New(viper.GetString("API_URL"))
	app := &app{mgr: mgr, cli: cli, in: bufio.NewScanner(os.Stdin)}
	app.run(ctx)
}

type app struct {
	mgr *session.Manager
	cli *api.Client
	in  *bufio.Scanner

	lista  []dto.PedidoResponse
	estado string // active filter
}

func (a *app) run(ctx context.Context) {
	for {
		v := a.mgr.Visibilidad()
		switch {
		case v.MostrarAuth:
			fmt.Println("\nComandos: login | registrar | salir")
		case v.MostrarNavegacion:
			u, _ := a.mgr.Usuario()
			fmt.Printf("\n[%s] Comandos: pedidos | filtrar <estado> | logout | salir\n", u.Nombre)
		}

		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(a.in.Text()), " ")

		switch cmd {
		case "salir":
			return
		case "login":
			if !v.MostrarAuth {
				fmt.Println("Ya hay una sesión iniciada.")
				continue
			}
			a.login(ctx)
		case "registrar":
			if !v.MostrarAuth {
				fmt.Println("Ya hay una sesión iniciada.")
				continue
			}
			a.registrar(ctx)
		case "logout":
			if !v.MostrarNavegacion {
				continue
			}
			a.mgr.CerrarSesion(ctx)
			a.lista = nil
			fmt.Println("Sesión cerrada.")
		case "pedidos":
			if !v.MostrarNavegacion {
				fmt.Println("Inicia sesión primero.")
				continue
			}
			a.verPedidos(ctx)
		case "filtrar":
			if !v.MostrarNavegacion {
				fmt.Println("Inicia sesión primero.")
				continue
			}
			a.filtrar(arg)
		case "":
		default:
			fmt.Println("Comando desconocido.")
		}
	}
}

func (a *app) login(ctx context.Context) {
	email := a.prompt("Email: ")
	password := a.promptPassword("Contraseña: ")

	// Capture the session epoch before the request: if the session changes
	// while the call is in flight, the result is dropped, never applied.
	gen := a.mgr.Generacion()
	user, err := a.cli.Login(ctx, email, password)
	if err != nil {
		fmt.Println(mensajeDeError(err))
		return
	}
	if a.mgr.EstablecerUsuario(ctx, gen, user) {
		fmt.Printf("Bienvenido, %s.\n", user.Nombre)
	}
}

func (a *app) registrar(ctx context.Context) {
	nombre := a.prompt("Nombre: ")
	email := a.prompt("Email: ")
	password := a.promptPassword("Contraseña (mín. 6): ")

	gen := a.mgr.Generacion()
	user, err := a.cli.Registrar(ctx, email, password, nombre)
	if err != nil {
		fmt.Println(mensajeDeError(err))
		return
	}
	if a.mgr.EstablecerUsuario(ctx, gen, user) {
		fmt.Printf("Cuenta creada. Bienvenido, %s.\n", user.Nombre)
	}
}

func (a *app) verPedidos(ctx context.Context) {
	lista, err := a.cli.ListarPedidos(ctx)
	if err != nil {
		fmt.Println(mensajeDeError(err))
		return
	}
	a.lista = lista
	a.estado = pedidos.EstadoTodos
	a.render()
}

func (a *app) filtrar(estado string) {
	if a.lista == nil {
		fmt.Println("Primero carga los pedidos con 'pedidos'.")
		return
	}
	if estado == "" {
		fmt.Println("Estados:", strings.Join(pedidos.Estados, " | "))
		estado = pedidos.EstadoTodos
	}
	a.estado = estado
	a.render()
}

func (a *app) render() {
	visibles := pedidos.FiltrarPorEstado(a.lista, a.estado)
	if len(visibles) == 0 {
		fmt.Printf("Sin pedidos (%s).\n", a.estado)
		return
	}
	for _, p := range visibles {
		fmt.Printf("#%d  %-30s  %-11s  promesa %s  cliente %s\n",
			p.ID, p.Titulo, p.EstadoActual, p.FechaPromesa.Format("2006-01-02"), p.Cliente)
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptPassword(label string) string {
	fmt.Print(label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		// Non-terminal stdin (tests, pipes): fall back to a plain line read.
		return a.prompt("")
	}
	return string(b)
}

// mensajeDeError renders every failure in plain language; API errors already
// carry the server's user-facing message.
func mensajeDeError(err error) string {
	if apiErr, ok := err.(*api.Error); ok {
		return apiErr.Msg
	}
	return "No se pudo conectar con el servidor. Intenta de nuevo."
}
