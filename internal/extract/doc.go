package extract

// Package extract implements the extraction controller shared by all
// front-ends: the queue of video sources, output configuration, and the
// batch worker that resolves, transcodes, and cleans up each item in order.
// Front-ends talk to the Service only through plain data and the callback
// ports; they never hand it presentation objects.
