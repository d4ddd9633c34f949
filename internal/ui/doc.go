package ui

// Package ui contains the Fyne-based desktop front-end. It is a thin
// adapter over the extraction controller: user interactions call into the
// controller surface and the controller's callbacks are redispatched onto
// the UI thread for rendering. No extraction state lives here.
