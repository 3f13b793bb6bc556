// Package services defines the shared error taxonomy and external API clients.
package services
