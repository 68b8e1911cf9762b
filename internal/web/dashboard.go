package web

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>NT Market Analyser</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; background: #0f1419; color: #e6e6e6; margin: 0; padding: 20px; }
  h1 { font-size: 20px; }
  h2 { font-size: 15px; color: #8899a6; margin-top: 28px; }
  table { border-collapse: collapse; width: 100%; font-size: 13px; }
  th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #22303c; }
  th { color: #8899a6; font-weight: 600; }
  .pos { color: #17bf63; }
  .neg { color: #e0245e; }
  .pill { display: inline-block; padding: 2px 8px; border-radius: 10px; font-size: 12px; background: #22303c; }
  button { background: #1d9bf0; color: #fff; border: none; border-radius: 4px; padding: 4px 10px; cursor: pointer; }
  button:hover { background: #1a8cd8; }
  #summary { display: flex; gap: 24px; margin: 12px 0; }
  .stat { background: #15202b; border-radius: 8px; padding: 12px 18px; }
  .stat .label { font-size: 11px; color: #8899a6; }
  .stat .value { font-size: 18px; margin-top: 2px; }
</style>
</head>
<body>
<h1>NT Market Analyser</h1>
<div id="summary">
  <div class="stat"><div class="label">Fear &amp; Greed</div><div class="value" id="fng">-</div></div>
  <div class="stat"><div class="label">Total PnL</div><div class="value" id="totalPnl">-</div></div>
  <div class="stat"><div class="label">Today PnL</div><div class="value" id="todayPnl">-</div></div>
</div>

<h2>Open positions</h2>
<table id="portfolio">
  <thead><tr><th>Symbol</th><th>Entry</th><th>Live</th><th>Qty</th><th>PnL %</th><th>PnL $</th><th></th></tr></thead>
  <tbody></tbody>
</table>

<h2>Recent signals</h2>
<table id="signals">
  <thead><tr><th>When</th><th>Market</th><th>Symbol</th><th>Change</th><th>RSI</th><th>Decision</th><th>Score</th><th>Signal</th></tr></thead>
  <tbody></tbody>
</table>

<h2>Closed trades</h2>
<table id="history">
  <thead><tr><th>Symbol</th><th>Entry</th><th>Exit</th><th>Reason</th><th>PnL $</th><th>Closed</th></tr></thead>
  <tbody></tbody>
</table>

<script>
function cls(v) { return v >= 0 ? "pos" : "neg"; }
function money(v) { return (v >= 0 ? "+" : "") + v.toFixed(2); }

async function loadSentiment() {
  const r = await fetch("/api/sentiment");
  if (!r.ok) return;
  const s = await r.json();
  document.getElementById("fng").textContent = s.value + " (" + s.value_classification + ")";
}

async function loadPortfolio() {
  const r = await fetch("/api/portfolio");
  const data = await r.json();
  const body = document.querySelector("#portfolio tbody");
  body.innerHTML = "";
  for (const p of data.positions) {
    const tr = document.createElement("tr");
    tr.innerHTML =
      "<td>" + p.symbol + "</td>" +
      "<td>$" + p.entry_price.toFixed(4) + "</td>" +
      "<td>$" + p.live_price.toFixed(4) + "</td>" +
      "<td>" + p.quantity.toFixed(6) + "</td>" +
      "<td class='" + cls(p.pnl_pct) + "'>" + money(p.pnl_pct) + "%</td>" +
      "<td class='" + cls(p.pnl_usd) + "'>$" + money(p.pnl_usd) + "</td>" +
      "<td><button onclick='sell(" + p.id + ")'>Sell</button></td>";
    body.appendChild(tr);
  }
}

async function loadSignals() {
  const r = await fetch("/api/signals");
  const data = await r.json();
  const body = document.querySelector("#signals tbody");
  body.innerHTML = "";
  for (const s of data.signals) {
    const tr = document.createElement("tr");
    tr.innerHTML =
      "<td>" + new Date(s.detected_at).toLocaleString() + "</td>" +
      "<td><span class='pill'>" + s.market + "</span></td>" +
      "<td>" + s.symbol + "</td>" +
      "<td class='" + cls(s.percent_change) + "'>" + money(s.percent_change) + "%</td>" +
      "<td>" + s.rsi.toFixed(1) + "</td>" +
      "<td>" + s.ai_decision + "</td>" +
      "<td>" + s.ai_score + "</td>" +
      "<td>" + s.technical_signal + "</td>";
    body.appendChild(tr);
  }
}

async function loadHistory() {
  const r = await fetch("/api/history");
  const data = await r.json();
  document.getElementById("totalPnl").textContent = "$" + money(data.total_pnl);
  document.getElementById("totalPnl").className = "value " + cls(data.total_pnl);
  document.getElementById("todayPnl").textContent = "$" + money(data.today_pnl);
  document.getElementById("todayPnl").className = "value " + cls(data.today_pnl);
  const body = document.querySelector("#history tbody");
  body.innerHTML = "";
  for (const t of data.trades) {
    const tr = document.createElement("tr");
    tr.innerHTML =
      "<td>" + t.symbol + "</td>" +
      "<td>$" + t.entry_price.toFixed(4) + "</td>" +
      "<td>$" + t.exit_price.toFixed(4) + "</td>" +
      "<td>" + t.close_reason + "</td>" +
      "<td class='" + cls(t.realized_pnl) + "'>$" + money(t.realized_pnl) + "</td>" +
      "<td>" + (t.closed_at ? new Date(t.closed_at).toLocaleString() : "") + "</td>";
    body.appendChild(tr);
  }
}

async function sell(id) {
  if (!confirm("Close position #" + id + "?")) return;
  await fetch("/trade/sell/" + id, { method: "POST" });
  await Promise.all([loadPortfolio(), loadHistory()]);
}

function refresh() {
  loadSentiment();
  loadPortfolio();
  loadSignals();
  loadHistory();
}
refresh();
setInterval(refresh, 30000);
</script>
</body>
</html>
`
