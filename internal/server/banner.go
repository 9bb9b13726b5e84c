package server

import (
	"fmt"
	"net"
	"strconv"
)

const yourIPPlaceholder = "<your-ip>"

func (s *Server) printBanner(addr net.Addr) {
	port := "0"
	host := ""
	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcpAddr.Port)
		if !tcpAddr.IP.IsUnspecified() {
			host = tcpAddr.IP.String()
		}
	}

	fmt.Fprintf(s.console, "🏘️  %s Server Started!\n", s.name)
	fmt.Fprintf(s.console, "📍 Open in your browser: http://localhost:%s\n", port)
	for _, h := range remoteHosts(host) {
		fmt.Fprintf(s.console, "📍 Or from another machine: http://%s\n", net.JoinHostPort(h, port))
	}
	fmt.Fprintf(s.console, "\nPress Ctrl+C to stop the server.\n\n")
}

func (s *Server) printFarewell() {
	fmt.Fprintf(s.console, "\n\n👋 Server stopped.\n")
}

// remoteHosts lists the hosts other machines on the LAN could use.
// For a wildcard bind it falls back to a placeholder when no interface
// address is found; a loopback bind is unreachable from elsewhere.
func remoteHosts(boundHost string) []string {
	if boundHost != "" {
		if ip := net.ParseIP(boundHost); ip != nil && ip.IsLoopback() {
			return nil
		}
		return []string{boundHost}
	}

	var hosts []string
	if addrs, err := net.InterfaceAddrs(); err == nil {
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok || ipNet.IP.IsLoopback() || ipNet.IP.To4() == nil {
				continue
			}
			hosts = append(hosts, ipNet.IP.String())
		}
	}

	if len(hosts) == 0 {
		return []string{yourIPPlaceholder}
	}
	return hosts
}
