package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// generateSelfSignedCert writes a self-signed certificate and key for quick local TLS.
func generateSelfSignedCert(certFile, keyFile string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("generate private key: %w", err)
	}

	hostname, _ := os.Hostname()

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"Request ID Server"},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost", hostname},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
	}

	derCert, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}

	if err := writePEM(certFile, 0644, &pem.Block{Type: "CERTIFICATE", Bytes: derCert}); err != nil {
		return err
	}
	return writePEM(keyFile, 0600, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
}

func writePEM(path string, perm os.FileMode, block *pem.Block) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := pem.Encode(f, block); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// startServer starts srv with TLS if enabled, generating a certificate when
// the configured one is missing.
func (s *server) startServer(srv *http.Server) error {
	if !s.cfg.EnableTLS {
		s.logger.Info("starting HTTP server (with H2C support)", zap.String("addr", srv.Addr))
		return srv.ListenAndServe()
	}

	if _, err := os.Stat(s.cfg.CertFile); errors.Is(err, os.ErrNotExist) {
		s.logger.Info("certificate file not found, generating a self-signed certificate",
			zap.String("cert_file", s.cfg.CertFile))
		if err := generateSelfSignedCert(s.cfg.CertFile, s.cfg.KeyFile); err != nil {
			return err
		}
	}
	s.logger.Info("starting HTTPS server", zap.String("addr", srv.Addr), zap.String("cert_file", s.cfg.CertFile))
	return srv.ListenAndServeTLS(s.cfg.CertFile, s.cfg.KeyFile)
}
