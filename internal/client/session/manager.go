package session

import (
	"context"
	"sync"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"

	"github.com/rs/zerolog/log"
)

// Estado is the session lifecycle state the UI gates on.
//
// Transitions: EstadoCargando → {EstadoAusente, EstadoPresente} once at
// startup; EstadoAusente → EstadoPresente on successful login/registration;
// EstadoPresente → EstadoAusente on logout.
type Estado int

const (
	EstadoCargando Estado = iota
	EstadoAusente
	EstadoPresente
)

func (e Estado) String() string {
	switch e {
	case EstadoCargando:
		return "cargando"
	case EstadoAusente:
		return "ausente"
	case EstadoPresente:
		return "presente"
	}
	return "desconocido"
}

// Visibilidad is the pure UI decision derived from an Estado.
type Visibilidad struct {
	MostrarProgreso   bool // indeterminate spinner, navigation suppressed
	MostrarAuth       bool // login / registration entry points
	MostrarNavegacion bool // full surface, incl. the pedido list
}

// VisibilidadDe maps a session state to what the UI may show. While loading,
// nothing is navigable; auth screens and the main surface are mutually
// exclusive.
func VisibilidadDe(e Estado) Visibilidad {
	switch e {
	case EstadoCargando:
		return Visibilidad{MostrarProgreso: true}
	case EstadoPresente:
		return Visibilidad{MostrarNavegacion: true}
	default:
		return Visibilidad{MostrarAuth: true}
	}
}

// Manager is the single owner of the current session. Screens observe it via
// Suscribir instead of reaching for a shared global, and every mutation goes
// through it so the persisted copy stays in step with the in-memory one.
//
// Save/Clear failures are logged and swallowed: losing the cached session
// only costs the user a re-login on next start.
type Manager struct {
	store Store

	mu      sync.Mutex
	estado  Estado
	usuario *dto.UsuarioPublico
	gen     uint64
	subs    []chan Estado
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, estado: EstadoCargando}
}

// Iniciar restores the persisted session and resolves the loading state.
// A read failure behaves like an absent session.
func (m *Manager) Iniciar(ctx context.Context) {
	user, err := m.store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session: restore failed — starting without session")
		user = nil
	}

	m.mu.Lock()
	if user != nil {
		m.usuario = user
		m.estado = EstadoPresente
	} else {
		m.estado = EstadoAusente
	}
	m.gen++
	m.mu.Unlock()
	m.notify()
}

// Generacion returns a token identifying the current session epoch. A caller
// firing an async request captures it first and passes it back to
// EstablecerUsuario, so a response that lands after a logout or a new login
// attempt is discarded instead of resurrecting stale state.
func (m *Manager) Generacion() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// EstablecerUsuario installs a session from a verified login/registration
// result. Returns false when gen is stale and the result was dropped.
func (m *Manager) EstablecerUsuario(ctx context.Context, gen uint64, user *dto.UsuarioPublico) bool {
	if user == nil {
		return false
	}

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		log.Debug().Msg("session: stale auth result discarded")
		return false
	}
	m.usuario = user
	m.estado = EstadoPresente
	m.mu.Unlock()
	m.notify()

	// Fire-and-forget persistence
	if err := m.store.Save(ctx, user); err != nil {
		log.Error().Err(err).Msg("session: persist failed")
	}
	return true
}

// CerrarSesion drops the session and clears the persisted copy.
func (m *Manager) CerrarSesion(ctx context.Context) {
	m.mu.Lock()
	m.usuario = nil
	m.estado = EstadoAusente
	m.gen++
	m.mu.Unlock()
	m.notify()

	if err := m.store.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("session: clear failed")
	}
}

// Usuario returns the current projection, if a session is present.
func (m *Manager) Usuario() (dto.UsuarioPublico, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.usuario == nil {
		return dto.UsuarioPublico{}, false
	}
	return *m.usuario, true
}

func (m *Manager) Estado() Estado {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.estado
}

func (m *Manager) Visibilidad() Visibilidad {
	return VisibilidadDe(m.Estado())
}

// Suscribir registers an observer for state changes. The channel is buffered
// and never blocks the Manager; a slow consumer coalesces updates and should
// re-read Estado() on wake.
func (m *Manager) Suscribir() <-chan Estado {
	ch := make(chan Estado, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) notify() {
	m.mu.Lock()
	estado := m.estado
	subs := make([]chan Estado, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- estado:
		default:
			// Drop: subscriber will observe the latest state on next read.
		}
	}
}
