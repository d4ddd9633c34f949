package model

// Package model defines domain data structures used across the app: queued
// source records, item and batch status enums, output formats with their
// ffmpeg codec mapping, and the batch result container. Structures are
// designed for direct binding in front-ends and explicit state transitions.
