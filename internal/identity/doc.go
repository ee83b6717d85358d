// Package identity looks up the logged-in user of a browser session on the
// identity service.
//
// The service answers a GET with an XML document holding a <user> element
// whose dn attribute is the subject of the user's certificate. The result is
// classified into a [models.LoginState].
package identity
