// Package view renders the handful of server-side pages the app serves.
// Templates are compiled in; there is no asset pipeline.
package view

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

type Renderer struct {
	templates *template.Template
}

func New() *Renderer {
	return &Renderer{templates: template.Must(template.New("pages").Parse(pages))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

const pages = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Todo List</title></head>
<body>{{end}}

{{define "foot"}}</body></html>{{end}}

{{define "index"}}{{template "head" .}}
<h1>Todo List</h1>
{{if .LoggedIn}}
<p><a href="/makelist">My todos</a> | <a href="/logout">Log out</a></p>
{{else}}
<p><a href="/register">Register</a> | <a href="/login">Log in</a></p>
{{end}}
{{template "foot" .}}{{end}}

{{define "register"}}{{template "head" .}}
<h1>Register</h1>
{{if .Error}}<p>{{.Error}}</p>{{end}}
<form method="post" action="/register">
  <label>Name <input type="text" name="name"></label><br>
  <label>Email <input type="email" name="email"></label><br>
  <label>Password <input type="password" name="password"></label><br>
  <button type="submit">Sign up</button>
</form>
<p>Already registered? <a href="/login">Log in</a></p>
{{template "foot" .}}{{end}}

{{define "login"}}{{template "head" .}}
<h1>Log in</h1>
{{if .Error}}<p>{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <label>Email <input type="email" name="email"></label><br>
  <label>Password <input type="password" name="password"></label><br>
  <button type="submit">Log in</button>
</form>
<p>No account yet? <a href="/register">Register</a></p>
{{template "foot" .}}{{end}}

{{define "makelist"}}{{template "head" .}}
<h1>{{.Name}}'s todos</h1>
<form method="post" action="/new-todo">
  <input type="text" name="new_todo" placeholder="What needs doing?">
  <button type="submit">Add</button>
</form>
<form method="post" action="/update_todos">
  <table>
    {{range .Todos}}
    <tr>
      <td>{{.Content}}</td>
      <td>
        <select name="status_{{.ID}}">
          <option value="todo" {{if eq .Status "todo"}}selected{{end}}>todo</option>
          <option value="doing" {{if eq .Status "doing"}}selected{{end}}>doing</option>
          <option value="done" {{if eq .Status "done"}}selected{{end}}>done</option>
        </select>
      </td>
      <td><a href="/edit-task/{{.ID}}">edit</a></td>
      <td><a href="/delete/{{.ID}}">delete</a></td>
    </tr>
    {{end}}
  </table>
  <button type="submit">Update statuses</button>
</form>
<p><a href="/logout">Log out</a></p>
{{template "foot" .}}{{end}}

{{define "edit"}}{{template "head" .}}
<h1>Edit task</h1>
<form method="post" action="/edit-task/{{.Todo.ID}}">
  <input type="text" name="edited-todo" value="{{.Todo.Content}}">
  <button type="submit">Save</button>
</form>
<p><a href="/makelist">Back</a></p>
{{template "foot" .}}{{end}}
`
