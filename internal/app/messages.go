// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the messages shown to visitors of the account and
// browsing routes. They are written into HTTP response bodies.
package app

const (
	// MsgInvalidRequest is returned when the request body cannot be decoded.
	MsgInvalidRequest = "La solicitud no es válida"

	MsgAccountCreated   = "Hemos enviado un email de confirmación, presiona el enlace"
	MsgDuplicateEmail   = "El usuario ya está registrado"
	MsgAccountConfirmed = "La cuenta se confirmó correctamente"

	// MsgConfirmFailed is the only answer to a bad confirmation token, so it
	// does not tell an unknown token from a used one.
	MsgConfirmFailed = "Hubo un error al confirmar tu cuenta, intenta de nuevo"

	MsgUserNotFound = "El usuario no existe"
	MsgNotVerified  = "Tu cuenta no ha sido confirmada"
	MsgBadPassword  = "El password es incorrecto"
	MsgLoggedOut    = "Sesión cerrada"

	MsgEmailNotFound    = "El email no pertenece a ningún usuario"
	MsgResetSent        = "Hemos enviado un email con las instrucciones"
	MsgResetTokenFailed = "Hubo un error al validar tu información, intenta de nuevo"
	MsgResetTokenValid  = "Define tu nuevo password"
	MsgPasswordSaved    = "El password se guardó correctamente"

	MsgCategoryNotFound = "La categoría no existe"
	MsgEmptySearchTerm  = "Escribe un término de búsqueda"
)
