package handler_test

import (
	"context"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Knight2115/API-StayManager/internal/config"
	"github.com/Knight2115/API-StayManager/internal/handler"
	"github.com/Knight2115/API-StayManager/internal/model"
	"github.com/Knight2115/API-StayManager/internal/repository"
	"github.com/Knight2115/API-StayManager/internal/utils"
)

// ---- fakes ----

type fakeCredenciales struct {
	byUsuario map[string]model.Credencial
	createErr error
	created   *model.Credencial
}

func (f *fakeCredenciales) GetByUsuario(ctx context.Context, usuario string) (*model.Credencial, error) {
	c, ok := f.byUsuario[usuario]
	if !ok {
		return nil, repository.ErrCredencialNotFound
	}
	return &c, nil
}

func (f *fakeCredenciales) Create(ctx context.Context, c *model.Credencial) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.CredencialKey = 1
	c.Rol = "empleado"
	c.Estado = true
	f.created = c
	return nil
}

type fakeEmpleados struct {
	byKey map[int64]model.Empleado
}

func (f *fakeEmpleados) ListAll(ctx context.Context) ([]model.Empleado, error) {
	out := []model.Empleado{}
	for _, e := range f.byKey {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmpleados) GetByKey(ctx context.Context, key int64) (*model.Empleado, error) {
	e, ok := f.byKey[key]
	if !ok {
		return nil, repository.ErrEmpleadoNotFound
	}
	return &e, nil
}

func newAuthHandler(creds *fakeCredenciales, emps *fakeEmpleados) *handler.AuthHandler {
	return handler.NewAuthHandler(config.Config{BcryptCost: bcrypt.MinCost}, creds, emps)
}

func credencialCon(password string, estado bool) model.Credencial {
	hash, _ := utils.HashPassword(password, bcrypt.MinCost)
	return model.Credencial{
		CredencialKey: 9, EmpKey: 4, Usuario: "mgarcia",
		PasswordHash: hash, Rol: "recepcion", Estado: estado,
	}
}

// ---- tests ----

func TestLogin_OK(t *testing.T) {
	creds := &fakeCredenciales{byUsuario: map[string]model.Credencial{
		"mgarcia": credencialCon("secreto", true),
	}}
	h := newAuthHandler(creds, &fakeEmpleados{})

	c, rec := newJSONContext(http.MethodPost, "/login", `{"usuario":"mgarcia","contraseña":"secreto"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Mensaje string `json:"mensaje"`
		Rol     string `json:"rol"`
		EmpKey  int64  `json:"EmpKey"`
	}
	decodeBody(t, rec, &resp)
	if resp.Rol != "recepcion" || resp.EmpKey != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLogin_UsuarioDesconocido(t *testing.T) {
	h := newAuthHandler(&fakeCredenciales{byUsuario: map[string]model.Credencial{}}, &fakeEmpleados{})

	c, rec := newJSONContext(http.MethodPost, "/login", `{"usuario":"nadie","contraseña":"x"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	creds := &fakeCredenciales{byUsuario: map[string]model.Credencial{
		"mgarcia": credencialCon("secreto", true),
	}}
	h := newAuthHandler(creds, &fakeEmpleados{})

	c, rec := newJSONContext(http.MethodPost, "/login", `{"usuario":"mgarcia","contraseña":"equivocada"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLogin_CuentaInactiva(t *testing.T) {
	creds := &fakeCredenciales{byUsuario: map[string]model.Credencial{
		"mgarcia": credencialCon("secreto", false),
	}}
	h := newAuthHandler(creds, &fakeEmpleados{})

	c, rec := newJSONContext(http.MethodPost, "/login", `{"usuario":"mgarcia","contraseña":"secreto"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRegistro_OK(t *testing.T) {
	creds := &fakeCredenciales{byUsuario: map[string]model.Credencial{}}
	emps := &fakeEmpleados{byKey: map[int64]model.Empleado{4: {EmpleadoKey: 4, Nombre: "Lucía"}}}
	h := newAuthHandler(creds, emps)

	c, rec := newJSONContext(http.MethodPost, "/registro", `{"EmpKey":4,"usuario":"lperez","contraseña":"clave"}`)
	if err := h.Registro(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	if creds.created == nil || creds.created.Usuario != "lperez" {
		t.Fatalf("credential not stored: %+v", creds.created)
	}
	if creds.created.PasswordHash == "clave" || creds.created.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
}

func TestRegistro_EmpleadoInexistente(t *testing.T) {
	h := newAuthHandler(&fakeCredenciales{}, &fakeEmpleados{byKey: map[int64]model.Empleado{}})

	c, rec := newJSONContext(http.MethodPost, "/registro", `{"EmpKey":99,"usuario":"x","contraseña":"y"}`)
	if err := h.Registro(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRegistro_UsuarioDuplicado(t *testing.T) {
	creds := &fakeCredenciales{createErr: repository.ErrUsuarioExists}
	emps := &fakeEmpleados{byKey: map[int64]model.Empleado{4: {EmpleadoKey: 4}}}
	h := newAuthHandler(creds, emps)

	c, rec := newJSONContext(http.MethodPost, "/registro", `{"EmpKey":4,"usuario":"lperez","contraseña":"clave"}`)
	if err := h.Registro(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}
